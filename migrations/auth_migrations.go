package migrations

import "gorm.io/gorm"

func GetAuthMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_07_01_000000_create_users_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS users (
						id VARCHAR(36) PRIMARY KEY,
						email VARCHAR(255),
						name VARCHAR(255),
						last_login TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
					CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON users(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`DROP TABLE IF EXISTS users;`).Error
			},
		},
	}
}
