package mysql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
)

//go:embed *.sql
var schemaFS embed.FS

var schemaFiles = []string{
	"sessions.sql",
}

func LoadDB(dsn string) *sql.DB {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Cannot connect to DB:", err)
	}
	if err := Migrate(context.Background(), db); err != nil {
		log.Fatal("Cannot create tables:", err)
	}
	return db
}

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, file := range schemaFiles {
		query, err := schemaFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file, err)
		}
	}
	return nil
}
