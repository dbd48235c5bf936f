package config

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var (
	// DB is the shared MySQL handle for the auth subsystem.
	DB   *sql.DB
	dbMu sync.Mutex
)

// ConnectDB initializes the shared MySQL connection (idempotent).
func ConnectDB(dsn string) *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("mysql open failed: %v", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Printf("warning: mysql ping failed (auth endpoints degraded): %v", err)
	}

	DB = db
	return DB
}

// CloseDB releases the shared MySQL handle.
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()
	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
