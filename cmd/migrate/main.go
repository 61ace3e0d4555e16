package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"kokko-factory-service/internal/platform/config"
	"kokko-factory-service/internal/platform/migrate"

	_ "github.com/lib/pq"
)

// usage: migrate [up|down|status|redo|reset|version] [args...]
func main() {
	flag.Parse()
	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	if err := migrate.Run(context.Background(), db, command, args...); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("migrate %s done", command)
}
