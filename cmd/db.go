package cmd

import (
	"database/sql"
	"fmt"

	// Registers the postgres driver for the bootstrap connection.
	_ "github.com/lib/pq"
)

// CreateDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing. First-run convenience so a fresh
// environment needs nothing beyond a postgres server.
func CreateDbIfNotExists(config Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", config.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		// Database names cannot be bound as parameters.
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", config.DBName)); err != nil {
			return fmt.Errorf("failed to create database %s: %w", config.DBName, err)
		}
	}

	return nil
}
