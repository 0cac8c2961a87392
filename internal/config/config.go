package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Export is settings for catalog generation
type Export struct {
	// Directory is where generated catalogs are written
	Directory string `yaml:"directory" env:"VIDCAT_EXPORT_DIR" env-default:"."`
}

// Configuration represents entire service configuration
type Configuration struct {
	// MongoDB connection string
	Database string `yaml:"database" env:"VIDCAT_DATABASE" env-default:"mongodb://localhost:27017"`

	// CameraModel is the default vendor label for new scans
	CameraModel string `yaml:"camera_model" env:"VIDCAT_CAMERA_MODEL"`

	Export Export `yaml:"export"`
}

var config Configuration

// Load opens and parses the configuration file; environment variables
// override file values. A missing path loads defaults and environment
// only.
func Load(configFilePath string) error {
	if configFilePath == "" {
		if err := cleanenv.ReadEnv(&config); err != nil {
			return fmt.Errorf("read configuration from environment failed: %w", err)
		}
		return nil
	}

	if err := cleanenv.ReadConfig(configFilePath, &config); err != nil {
		return fmt.Errorf("read configuration failed: %w", err)
	}
	return nil
}

// Config returns loaded configuration
func Config() Configuration {
	return config
}
