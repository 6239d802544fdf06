package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Wardrobe specifics
	Storage     StorageConfig
	Gemini      GeminiConfig
	GoogleDrive GoogleDriveConfig
	Stylist     StylistConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the durable key-value mirror of the wardrobe
// collections.
type StorageConfig struct {
	DataDir string
}

type GeminiConfig struct {
	APIKey       string
	AnalyzeModel string
	IdeasModel   string
}

// GoogleDriveConfig enables the optional item-photo archive. Leave
// CredentialsPath empty to run without it.
type GoogleDriveConfig struct {
	CredentialsPath string
	FolderID        string
}

// StylistConfig caps how fast the Gemini-backed endpoints may be hit.
type StylistConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.DataDir = viper.GetString("storage.data_dir")
	if dataDir := viper.GetString("wardrobe_data_dir"); dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.AnalyzeModel = viper.GetString("gemini.analyze_model")
	cfg.Gemini.IdeasModel = viper.GetString("gemini.ideas_model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required - set gemini.api_key in config.yaml or GEMINI_API_KEY")
	}

	// Google Drive photo archive (optional)
	cfg.GoogleDrive.CredentialsPath = viper.GetString("google_drive.credentials_path")
	cfg.GoogleDrive.FolderID = viper.GetString("google_drive.folder_id")
	if googleCreds := viper.GetString("google_drive_credentials"); googleCreds != "" {
		cfg.GoogleDrive.CredentialsPath = googleCreds
	}

	// Stylist rate limit
	cfg.Stylist.RequestsPerSecond = viper.GetFloat64("stylist.requests_per_second")
	cfg.Stylist.Burst = viper.GetInt("stylist.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("gemini.analyze_model", "gemini-2.5-flash")
	viper.SetDefault("gemini.ideas_model", "gemini-2.5-pro")
	viper.SetDefault("stylist.requests_per_second", 1)
	viper.SetDefault("stylist.burst", 3)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
