package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Duration parses "15m" style values from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	JWT        JWTConfig        `yaml:"jwt"`
	Chatbot    ChatbotConfig    `yaml:"chatbot"`
	Email      EmailConfig      `yaml:"email"`
	Storage    StorageConfig    `yaml:"storage"`
	Workers    WorkersConfig    `yaml:"workers"`
	FirstAdmin FirstAdminConfig `yaml:"first_admin"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug | release
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type JWTConfig struct {
	Secret          string   `yaml:"secret"`
	AccessTokenTTL  Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL Duration `yaml:"refresh_token_ttl"`
}

type ChatbotConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type EmailConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type StorageConfig struct {
	Provider  string `yaml:"provider"` // local | s3
	LocalPath string `yaml:"local_path"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type WorkersConfig struct {
	EligibilityInterval Duration `yaml:"eligibility_interval"`
	RequestInterval     Duration `yaml:"request_interval"`
	RequestTTL          Duration `yaml:"request_ttl"`
}

// FirstAdminConfig seeds the initial administrator account at startup
// when no admin exists yet.
type FirstAdminConfig struct {
	LoginID  string `yaml:"login_id"`
	Password string `yaml:"password"`
}

// LoadConfig reads the YAML file at path and applies environment
// overrides for deployment-sensitive values.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required (set JWT_SECRET)")
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "k9hope",
			SSLMode: "disable",
		},
		JWT: JWTConfig{
			AccessTokenTTL:  Duration(15 * time.Minute),
			RefreshTokenTTL: Duration(7 * 24 * time.Hour),
		},
		Chatbot: ChatbotConfig{
			Model:   "gemini-2.0-flash",
			BaseURL: "https://generativelanguage.googleapis.com",
		},
		Storage: StorageConfig{
			Provider:  "local",
			LocalPath: "./uploads",
		},
		Workers: WorkersConfig{
			EligibilityInterval: Duration(time.Hour),
			RequestInterval:     Duration(time.Hour),
			RequestTTL:          Duration(14 * 24 * time.Hour),
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setString(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Mode, "GIN_MODE")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	setString(&cfg.JWT.Secret, "JWT_SECRET")

	setString(&cfg.Chatbot.APIKey, "GEMINI_API_KEY")
	setString(&cfg.Chatbot.Model, "GEMINI_MODEL")
	setString(&cfg.Chatbot.BaseURL, "GEMINI_BASE_URL")

	if v := os.Getenv("EMAIL_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Email.Enabled = b
		}
	}
	setString(&cfg.Email.Host, "SMTP_HOST")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Email.Port = p
		}
	}
	setString(&cfg.Email.Username, "SMTP_USERNAME")
	setString(&cfg.Email.Password, "SMTP_PASSWORD")
	setString(&cfg.Email.From, "SMTP_FROM")

	setString(&cfg.Storage.Provider, "STORAGE_PROVIDER")
	setString(&cfg.Storage.LocalPath, "STORAGE_LOCAL_PATH")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setString(&cfg.Storage.Region, "STORAGE_REGION")
	setString(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")

	setString(&cfg.FirstAdmin.LoginID, "FIRST_ADMIN_LOGIN")
	setString(&cfg.FirstAdmin.Password, "FIRST_ADMIN_PASSWORD")
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
