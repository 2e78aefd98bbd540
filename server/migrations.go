package server

import "database/sql"

// migrate runs database migrations. The users table is the only state this
// service owns; dragons live behind the external API and sessions live in
// signed tokens.
func migrate(db *sql.DB) error {
	_, err := db.Exec(migrationUsers)
	return err
}

const migrationUsers = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);
`
