package migrations

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

// Migrator applies registered migrations in order, recording each run in the
// migrations table so reruns are no-ops. Migrations applied together share a
// batch number and roll back together.
type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB) *Migrator {
	db.AutoMigrate(&Migration{})
	return &Migrator{db: db}
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) Migrate() error {
	fmt.Println("Running database migrations...")

	batch := m.latestBatch() + 1

	for _, migration := range m.migrations {
		if m.hasRun(migration.Name) {
			continue
		}

		fmt.Printf("Migrating: %s\n", migration.Name)

		tx := m.db.Begin()

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", migration.Name, err)
		}

		if err := tx.Create(&Migration{Name: migration.Name, Batch: batch}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
		}

		tx.Commit()
	}

	fmt.Println("Migration completed successfully")
	return nil
}

func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	for i := 0; i < steps; i++ {
		batch := m.latestBatch()
		if batch == 0 {
			break
		}

		var applied []Migration
		m.db.Where("batch = ?", batch).Order("id DESC").Find(&applied)

		for _, record := range applied {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", record.Name)
			}
			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			fmt.Printf("Rolling back: %s\n", record.Name)

			tx := m.db.Begin()

			if err := migration.Down(tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
			}

			if err := tx.Delete(&record).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
			}

			tx.Commit()
		}
	}

	fmt.Println("Rollback completed")
	return nil
}

// Status lists every registered migration and whether it has run.
func (m *Migrator) Status() {
	fmt.Println("Migration status:")
	for _, migration := range m.migrations {
		state := "pending"
		if m.hasRun(migration.Name) {
			state = "applied"
		}
		fmt.Printf("  %-50s %s\n", migration.Name, state)
	}
}

func (m *Migrator) hasRun(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) latestBatch() int {
	var batch int
	m.db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Scan(&batch)
	return batch
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
