package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"shot-tracker-api/config"
	"shot-tracker-api/migrations"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()
	migrator := migrations.NewMigrator(config.DB)

	for _, migration := range migrations.GetAuthMigrations() {
		migrator.AddMigration(migration)
	}
	for _, migration := range migrations.GetCoreMigrations() {
		migrator.AddMigration(migration)
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			log.Fatal("Migration failed: ", err)
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			log.Fatal("Rollback failed: ", err)
		}
	case "status":
		migrator.Status()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println("Commands:")
	fmt.Println("  migrate         Apply pending migrations")
	fmt.Println("  rollback [n]    Roll back the last n batches (default 1)")
	fmt.Println("  status          Show migration status")
}
