package config

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr  string
	CatalogFile string
	DBPath      string
	LogLevel    string
	LogDir      string
}

// LoadEnv reads .env when present; plain environment variables still apply.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

// Default values, overridden by CDU_* environment variables.
func Default() Config {
	return Config{
		ListenAddr:  getEnv("CDU_LISTEN_ADDR", ":5000"),
		CatalogFile: getEnv("CDU_CATALOG", "airport_data.json"),
		DBPath:      getEnv("CDU_DB_PATH", "cduDB"),
		LogLevel:    getEnv("CDU_LOG_LEVEL", "info"),
		LogDir:      getEnv("CDU_LOG_DIR", "logs"),
	}
}

// RegisterFlags binds the config fields to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ListenAddr, "listenaddr", c.ListenAddr, "server listen address")
	fs.StringVar(&c.CatalogFile, "catalog", c.CatalogFile, "waypoint catalog json file (airport_data.json)")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "pebble directory holding the imported catalog")
	fs.StringVar(&c.LogLevel, "loglevel", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogDir, "logdir", c.LogDir, "directory for rotated log files, empty logs to stdout only")
}
