package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const minSecretLen = 32

type Config struct {
	Addr          string
	MongoURI      string
	MongoDBName   string
	MySQLDSN      string
	SessionSecret string
	SessionName   string
	SecureCookies bool
	LogLevel      string
}

// Load reads the env file named by START (".env" when unset) and then the
// process environment. Missing required settings are fatal.
func Load() Config {
	if err := godotenv.Load(envFile(os.Getenv("START"))); err != nil {
		log.Printf("env file not loaded, using process environment: %v", err)
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:          withDefault(getenv("APP_ADDR"), ":3000"),
		MongoURI:      getenv("MONGO_URI"),
		MongoDBName:   withDefault(getenv("MONGO_DB_NAME"), "crudApp"),
		MySQLDSN:      getenv("MYSQL_DSN"),
		SessionSecret: getenv("SESSION_SECRET"),
		SessionName:   withDefault(getenv("SESSION_NAME"), "sid"),
		LogLevel:      withDefault(getenv("LOG_LEVEL"), "info"),
	}

	if v := getenv("SECURE_COOKIES"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SECURE_COOKIES: %w", err)
		}
		cfg.SecureCookies = secure
	}

	var errs []error
	if cfg.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI is not set in environment"))
	}
	if cfg.MySQLDSN == "" {
		errs = append(errs, errors.New("MYSQL_DSN is not set in environment"))
	}
	if len(cfg.SessionSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSecretLen))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envFile(name string) string {
	if name == "" {
		return ".env"
	}
	return name
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
