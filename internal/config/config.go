package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		AdminEmail   string `yaml:"admin_email"`
	} `yaml:"email"`

	CORS struct {
		// Comma-separated origin list. Empty or "*" allows any origin
		// without credentials.
		AllowedOrigins string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Load builds the process-wide configuration: config file first (when
// present), then environment variables on top. The resulting struct is
// constructed once at startup and handed to the components that need it.
func Load() (*Config, error) {
	// .env is optional, used for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "Style Homes"

	configPath := os.Getenv("CONFIG_PATH")
	explicitPath := configPath != ""
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	} else if explicitPath {
		// An explicitly requested config file must exist.
		return nil, fmt.Errorf("failed to open config file %s: %w", configPath, err)
	}

	applyEnv(cfg)

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured (set DATABASE_URL or database.url)")
	}
	if cfg.Email.FromEmail == "" {
		return nil, fmt.Errorf("sender address is not configured (set APP_EMAIL_FROM or email.from_email)")
	}
	if cfg.Email.AdminEmail == "" {
		return nil, fmt.Errorf("admin address is not configured (set APP_EMAIL_ADMIN or email.admin_email)")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.Email.SMTPUser = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	if v := os.Getenv("APP_EMAIL_FROM"); v != "" {
		cfg.Email.FromEmail = v
	}
	if v := os.Getenv("APP_EMAIL_FROM_NAME"); v != "" {
		cfg.Email.FromName = v
	}
	if v := os.Getenv("APP_EMAIL_ADMIN"); v != "" {
		cfg.Email.AdminEmail = v
	}
	if v := os.Getenv("APP_CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = v
	}
}
