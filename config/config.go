package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/raine/portionvision/internal/camera"
)

const (
	AppName     = "portionvision"
	EnvFileName = "config.env"
)

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// ConfigFilePath returns the full path of the env config file, creating its
// directory if needed.
func ConfigFilePath() (string, error) {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(configBase, AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, EnvFileName), nil
}

// Config holds the application settings, all optional.
type Config struct {
	// DBPath is the SQLite file for the portion log and favorites.
	// Empty means the default location in the user config directory.
	DBPath string
	// CatalogURL optionally replaces the builtin food dataset with a
	// remote JSON catalog.
	CatalogURL string
	// CameraFacing selects which camera to use.
	CameraFacing camera.FacingMode
}

// FromEnv reads configuration from the environment, applying defaults.
func FromEnv() Config {
	cfg := Config{
		DBPath:       os.Getenv("PV_DB_PATH"),
		CatalogURL:   os.Getenv("PV_CATALOG_URL"),
		CameraFacing: camera.FacingEnvironment,
	}
	if facing := os.Getenv("PV_CAMERA_FACING"); facing == string(camera.FacingUser) {
		cfg.CameraFacing = camera.FacingUser
	}
	if cfg.DBPath == "" {
		if configBase, err := os.UserConfigDir(); err == nil {
			cfg.DBPath = filepath.Join(configBase, AppName, "portions.db")
		} else {
			cfg.DBPath = "portions.db"
		}
	}
	return cfg
}
