package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

// Load reads the yaml config file if it exists and overlays the ADDR
// and DB_PATH environment variables on top. Missing file means
// defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		Addr:   ":8080",
		DBPath: "./tasks.db",
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("Error trying to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("Error trying to read config %s: %w", path, err)
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	return cfg, nil
}
