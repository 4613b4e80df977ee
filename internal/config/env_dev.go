//go:build dev

package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv merges a local .env file into the process environment. A missing
// file is fine; only a broken one is an error.
func loadDotEnv() error {
	switch _, err := os.Stat(".env"); {
	case err == nil:
		return godotenv.Load(".env")
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}
