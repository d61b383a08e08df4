package main

import (
	"log"
	"os"

	"shot-tracker-api/config"
	"shot-tracker-api/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()
	f := fixtures.NewFixtures(config.DB)

	if len(os.Args) > 1 && os.Args[1] == "clean" {
		if err := f.Clean(); err != nil {
			log.Fatal("Clean failed: ", err)
		}
		return
	}

	if err := f.GenerateTestData(); err != nil {
		log.Fatal("Fixtures generation failed: ", err)
	}
}
