package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/db"
)

// Config holds process-wide settings.
type Config struct {
	DBPath        string // db.MemoryPath keeps the session in memory
	DefaultSeed   int64
	LogUseCases   bool
	HistoryPath   string // empty disables shell history
	DefaultPreset string
}

// Default returns the settings used when no environment overrides exist.
func Default() Config {
	cfg := Config{
		DBPath:        db.MemoryPath,
		DefaultSeed:   42,
		DefaultPreset: catalog.DefaultPresetKey,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryPath = filepath.Join(home, ".pawplan", "shell_history")
	}
	return cfg
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Existing variables win. A
// missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or malformed values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("PAWPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PAWPLAN_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.DefaultSeed = n
		}
	}
	if v := os.Getenv("PAWPLAN_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v, ok := os.LookupEnv("PAWPLAN_HISTORY"); ok {
		cfg.HistoryPath = v
	}
	if v := os.Getenv("PAWPLAN_PRESET"); v != "" {
		cfg.DefaultPreset = v
	}
	return cfg
}
