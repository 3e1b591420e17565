package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nmoralesv/informe/internal/storage"
)

// getDatabase opens the history store at the configured path. The returned
// cleanup closes it.
func getDatabase() (*storage.SQLiteStorage, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "informe", "informe.db")
	}

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	cleanup := func() { _ = db.Close() }
	return db, cleanup, nil
}
