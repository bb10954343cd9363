package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort          = "8080"
	defaultMailHost      = "smtp.gmail.com"
	defaultMailPort      = "587"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultAdminEmail    = "admin@rakshakmorcha.org"
	defaultAdminPassword = "change-me-admin-password"
	defaultUploadDir     = "./uploads"
	defaultStaticBase    = "/uploads"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailTo   string

	JWTSecret string

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string

	UploadDir  string
	StaticBase string
}

func Load() (*Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}

	cfg := &Config{
		AppEnv:      strings.ToLower(appEnv),
		Port:        strings.TrimSpace(getEnv("PORT", defaultPort)),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),

		MailHost: strings.TrimSpace(getEnv("EMAIL_HOST", defaultMailHost)),
		MailUser: strings.TrimSpace(os.Getenv("EMAIL_USER")),
		MailPass: os.Getenv("EMAIL_PASS"),

		JWTSecret: strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),

		AdminEmail:        strings.TrimSpace(getEnv("ADMIN_EMAIL", defaultAdminEmail)),
		AdminPassword:     getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),

		UploadDir:  strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir)),
		StaticBase: strings.TrimSpace(getEnv("STATIC_BASE", defaultStaticBase)),
	}

	// Contact notifications land in the configured mailbox; absent an
	// explicit recipient they go to the sending account, as the original
	// deployment did.
	cfg.MailTo = strings.TrimSpace(getEnv("EMAIL_TO", cfg.MailUser))

	port, err := strconv.Atoi(strings.TrimSpace(getEnv("EMAIL_PORT", defaultMailPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid EMAIL_PORT value: %w", err)
	}
	cfg.MailPort = port

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminPasswordHash == "" && isEmptyOrDefault(cfg.AdminPassword, defaultAdminPassword) {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD_HASH or a non-default ADMIN_PASSWORD must be set")
		}
		return nil
	}

	if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		log.Printf("config warning: JWT_SECRET is unset, using the development default")
	}
	if cfg.AdminPasswordHash == "" && isEmptyOrDefault(cfg.AdminPassword, defaultAdminPassword) {
		log.Printf("config warning: ADMIN_PASSWORD is unset, using the development default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
