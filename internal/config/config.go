package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr string `yaml:"addr"`

	// StoreDriver selects the record-store backend: memory, file, mysql or
	// sqlite.
	StoreDriver string `yaml:"store_driver"`
	DataDir     string `yaml:"data_dir"`
	SQLitePath  string `yaml:"sqlite_path"`

	DBUser string `yaml:"db_user"`
	DBPass string `yaml:"db_pass"`
	DBHost string `yaml:"db_host"`
	DBPort string `yaml:"db_port"`
	DBName string `yaml:"db_name"`

	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`

	// CascadeDelete removes a category's exhibits when the category is
	// deleted. Off by default: the stock behavior keeps orphaned exhibits.
	CascadeDelete bool `yaml:"cascade_delete"`

	AllowOrigins []string `yaml:"allow_origins"`
	Debug        bool     `yaml:"debug"`
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func New() Config {
	cfg := Config{
		Addr:          getenv("ADDR", ":8080"),
		StoreDriver:   getenv("STORE_DRIVER", "memory"),
		DataDir:       getenv("DATA_DIR", "./data"),
		SQLitePath:    getenv("SQLITE_PATH", "./catalog.db"),
		DBUser:        getenv("DB_USER", "root"),
		DBPass:        getenv("DB_PASS", ""),
		DBHost:        getenv("DB_HOST", "127.0.0.1"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBName:        getenv("DB_NAME", "exhibition_catalog"),
		GeminiAPIKey:  getenv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:   getenv("GEMINI_MODEL", ""),
		CascadeDelete: os.Getenv("CASCADE_DELETE") == "1",
		Debug:         os.Getenv("DEBUG") == "1",
		AllowOrigins:  []string{"http://localhost:3000", "http://127.0.0.1:3000"},
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = strings.Split(v, ",")
	}
	return cfg
}

// LoadFile reads a YAML config file over the environment defaults, so a file
// only needs to state what differs.
func LoadFile(path string) (Config, error) {
	cfg := New()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) MySQLDSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	auth := c.DBUser
	if c.DBPass != "" {
		auth += ":" + c.DBPass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=Local", auth, c.DBHost, c.DBPort, c.DBName)
}
