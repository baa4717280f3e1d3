package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Open opens a sql connection pool and checks it is reachable within pingTimeout
func Open(driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}
