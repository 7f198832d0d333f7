package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/academisoft/cronograma-api/pkg/config"
)

const migrationsDir = "migrations"

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("conexión a la base de datos: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping a la base de datos: %v", err)
	}

	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			log.Fatalf("aplicar migraciones: %v", err)
		}
		fmt.Println("migraciones aplicadas")
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			log.Fatalf("revertir migración: %v", err)
		}
		fmt.Println("migración revertida")
	case "status":
		if err := goose.Status(db, migrationsDir); err != nil {
			log.Fatalf("estado de migraciones: %v", err)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: migrator <up|down|status>")
	fmt.Fprintln(os.Stderr, "la conexión sale de DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME")
}
