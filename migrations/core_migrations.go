package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_07_01_000100_create_tracking_tables",
			Up: func(db *gorm.DB) error {
				// teams: one per owner; the app only ever loads the first.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id VARCHAR(36) PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						owner_user_id VARCHAR(36) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (owner_user_id) REFERENCES users(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_teams_owner_user_id ON teams(owner_user_id);
					CREATE INDEX IF NOT EXISTS idx_teams_deleted_at ON teams(deleted_at);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id VARCHAR(36) PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						team_id VARCHAR(36) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
				`).Error; err != nil {
					return err
				}

				// games.date is a display string by design, ordering uses
				// created_at.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS games (
						id VARCHAR(36) PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						date VARCHAR(32) NOT NULL,
						team_id VARCHAR(36) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_games_team_id ON games(team_id);
					CREATE INDEX IF NOT EXISTS idx_games_created_at ON games(created_at);
					CREATE INDEX IF NOT EXISTS idx_games_deleted_at ON games(deleted_at);
				`).Error; err != nil {
					return err
				}

				// shots reference the attributing player by display name,
				// deliberately not by player id.
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS shots (
						id VARCHAR(36) PRIMARY KEY,
						type VARCHAR(16) NOT NULL,
						result VARCHAR(16) NOT NULL,
						player_name VARCHAR(255) NOT NULL,
						game_id VARCHAR(36) NOT NULL,
						timestamp BIGINT NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_shots_game_id ON shots(game_id);
					CREATE INDEX IF NOT EXISTS idx_shots_timestamp ON shots(timestamp);
					CREATE INDEX IF NOT EXISTS idx_shots_deleted_at ON shots(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS shots;
					DROP TABLE IF EXISTS games;
					DROP TABLE IF EXISTS players;
					DROP TABLE IF EXISTS teams;
				`).Error
			},
		},
	}
}
