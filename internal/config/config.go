package config

import (
	"log"
	"os"
	"strconv"

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

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		AdminEmail   string `yaml:"admin_email"` // inbox for contact/quote notifications
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3, cloudflare_r2
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3/R2
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3/R2
		SecretKey string `yaml:"secret_key"` // for S3/R2
		Endpoint  string `yaml:"endpoint"`   // for R2 or custom S3
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // allowed MIME types
	} `yaml:"upload"`

	CORS struct {
		Origin string `yaml:"origin"` // SPA frontend origin
	} `yaml:"cors"`

	Seed struct {
		AdminName      string `yaml:"admin_name"`
		AdminEmail     string `yaml:"admin_email"`
		AdminPassword  string `yaml:"admin_password"`
		WorkerName     string `yaml:"worker_name"`
		WorkerEmail    string `yaml:"worker_email"`
		WorkerPassword string `yaml:"worker_password"`
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml (or CONFIG_PATH). When DATABASE_URL is
// set the yaml file is skipped and the environment supplies everything; this
// is the mode tests and containers run in.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = envOr("SMTP_HOST", "localhost")
	cfg.Email.SMTPPort = 587
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = envOr("EMAIL_FROM", "noreply@ddlandscaping.com")
	cfg.Email.AdminEmail = envOr("EMAIL_ADMIN", "admin@ddlandscaping.com")

	cfg.Storage.Type = envOr("STORAGE_TYPE", "local")
	cfg.Storage.BasePath = envOr("STORAGE_PATH", "./uploads")
	cfg.Storage.BaseURL = envOr("STORAGE_URL", "/uploads")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8767
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp", "application/pdf",
		}
	}
	if cfg.CORS.Origin == "" {
		cfg.CORS.Origin = "http://localhost:16262"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "D&D Landscaping Pro"
	}
	if cfg.Seed.AdminName == "" {
		cfg.Seed.AdminName = "Administrador"
	}
	if cfg.Seed.AdminEmail == "" {
		cfg.Seed.AdminEmail = "admin@ddlandscaping.com"
	}
	if cfg.Seed.WorkerName == "" {
		cfg.Seed.WorkerName = "Juan Trabajador"
	}
	if cfg.Seed.WorkerEmail == "" {
		cfg.Seed.WorkerEmail = "worker@ddlandscaping.com"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
