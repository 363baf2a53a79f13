package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ferohs/clashdata/internal/gamedata"
)

// Client holds all configuration for the data layer tooling.
type Client struct {
	// Static game data
	DataDir string      `yaml:"data_dir"`
	Files   StaticFiles `yaml:"files"`

	// Account progression curve: laboratory level → town hall level.
	// Must be invertible, the loader fails loudly on duplicates.
	LabToTownhall map[int]int `yaml:"lab_to_townhall"`

	// Database (player snapshots)
	Database DatabaseConfig `yaml:"database"`

	LogLevel string `yaml:"log_level"`
}

// StaticFiles holds the file names of one static balance dump inside DataDir.
type StaticFiles struct {
	Troops    string `yaml:"troops"`
	Spells    string `yaml:"spells"`
	Heroes    string `yaml:"heroes"`
	Pets      string `yaml:"pets"`
	Buildings string `yaml:"buildings"`
	Texts     string `yaml:"texts"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultClient returns Client config with sensible defaults.
func DefaultClient() Client {
	return Client{
		DataDir: "static",
		Files: StaticFiles{
			Troops:    "characters.json",
			Spells:    "spells.json",
			Heroes:    "heroes.json",
			Pets:      "pets.json",
			Buildings: "buildings.json",
			Texts:     "texts.json",
		},
		LabToTownhall: map[int]int{
			1: 3, 2: 4, 3: 5, 4: 6, 5: 7, 6: 8, 7: 9,
			8: 10, 9: 11, 10: 12, 11: 13, 12: 14, 13: 15, 14: 16, 15: 17,
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "clashdata",
			DBName:  "clashdata",
			SSLMode: "disable",
		},
		LogLevel: "info",
	}
}

// LoadClient reads a YAML config file, applying defaults for missing fields.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// FilePaths resolves the configured file names against DataDir.
func (c Client) FilePaths() gamedata.FilePaths {
	return gamedata.FilePaths{
		Troops:    filepath.Join(c.DataDir, c.Files.Troops),
		Spells:    filepath.Join(c.DataDir, c.Files.Spells),
		Heroes:    filepath.Join(c.DataDir, c.Files.Heroes),
		Pets:      filepath.Join(c.DataDir, c.Files.Pets),
		Buildings: filepath.Join(c.DataDir, c.Files.Buildings),
		Texts:     filepath.Join(c.DataDir, c.Files.Texts),
	}
}
