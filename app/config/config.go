package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	DB     *sql.DB
	Driver string
}

var AppConfig *Config

// InitDB opens the configured database. The default is the embedded SQLite
// file next to the binary; DB_DRIVER=postgres switches to an institutional
// PostgreSQL server.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}

	var dsn string
	switch driver {
	case "sqlite3":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "./capacita.db"
		}
		dsn = path + "?_foreign_keys=on"
	case "postgres":
		host := envOr("DB_HOST", "localhost")
		port := envOr("DB_PORT", "5432")
		user := envOr("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := envOr("DB_NAME", "capacita")
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	default:
		log.Fatalf("Unsupported DB_DRIVER: %s", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	if driver == "postgres" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	} else {
		// SQLite serializes writers; a single connection avoids SQLITE_BUSY
		// during import transactions.
		db.SetMaxOpenConns(1)
	}

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Database connection failed:", err)
	}
	log.Printf("Connected to %s database", driver)

	AppConfig = &Config{DB: db, Driver: driver}
}

func GetDB() *sql.DB {
	if AppConfig == nil {
		return nil
	}
	return AppConfig.DB
}

func GetDriver() string {
	if AppConfig == nil {
		return "sqlite3"
	}
	return AppConfig.Driver
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
