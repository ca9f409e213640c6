package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"card-fraud-system/config"

	_ "modernc.org/sqlite"
)

// SQLiteStorage представляет хранилище SQLite. Одно подключение обслуживает
// реестр карт, журнал операций, оповещения, клиентов и отчеты.
type SQLiteStorage struct {
	DB *sql.DB
}

// NewConnection создает новое соединение с SQLite
func NewConnection(cfg *config.Config) (*SQLiteStorage, error) {
	dbPath := cfg.DB.DBPath
	if dbPath == "" {
		dbPath = "./data/card_fraud.db"
	}

	if dbPath != ":memory:" {
		// Создаем директорию, если её нет
		dbDir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite",
		dbPath,
	)

	log.Printf("Connecting to SQLite: path=%s", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite поддерживает только одно соединение для записи
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	storage := &SQLiteStorage{DB: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Println("SQLite connection established")
	return storage, nil
}

// Close закрывает соединение с БД
func (s *SQLiteStorage) Close() error {
	return s.DB.Close()
}
