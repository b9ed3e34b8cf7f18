package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const developmentSecret = "furns-admin-secret-2024"

type Config struct {
	AppEnv          string
	ServiceName     string
	Port            string
	MongoURI        string
	MongoDB         string
	// LegacyIDLookup resuelve también por _id; se puede apagar después de migrate-ids
	LegacyIDLookup  bool
	ShutdownTimeout time.Duration
	Auth            AuthConfig
	CORS            CORSConfig
	Upload          UploadConfig
	Logger          LoggerConfig

	// EnvFileLoaded indica si se leyó un archivo .env local
	EnvFileLoaded bool
}

// AuthConfig contiene el secreto compartido de las rutas de escritura
type AuthConfig struct {
	Secret string
}

// CORSConfig es la política CORS; por defecto permite cualquier origen
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

func (c CORSConfig) AllowsAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validate rechaza orígenes sin esquema http(s), que el middleware CORS no acepta.
func (c CORSConfig) validate() error {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			continue
		}
		hasScheme := strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://")
		if !hasScheme || strings.Contains(origin, "*") {
			return fmt.Errorf("invalid CORS origin %q: must be \"*\" or start with http:// or https://", origin)
		}
	}
	return nil
}

type UploadConfig struct {
	Dir       string
	URLPrefix string
	MaxBytes  int64
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
	File              string
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// LoadConfig lee .env si existe y luego las variables de entorno
func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	loaded := false
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
		loaded = true
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "production"),
		ServiceName:     getEnv("SERVICE_NAME", "furns-portfolio-api"),
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", getEnv("MONGO_URL", "mongodb://localhost:27017")),
		MongoDB:         getEnv("MONGO_DB", "furns_portfolio"),
		LegacyIDLookup:  getEnvBool("MONGO_LEGACY_ID_LOOKUP", true),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		Auth: AuthConfig{
			Secret: getEnv("API_SECRET", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE"}),
			AllowedHeaders: getEnvSlice("CORS_ALLOWED_HEADERS", []string{"*"}),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "uploads"),
			URLPrefix: "/" + strings.Trim(getEnv("UPLOAD_URL_PREFIX", "/uploads"), "/"),
			MaxBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
			File:              getEnv("LOG_FILE", ""),
		},
		EnvFileLoaded: loaded,
	}

	if err := cfg.CORS.validate(); err != nil {
		return nil, err
	}

	if cfg.Auth.Secret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("API_SECRET is required")
		}
		cfg.Auth.Secret = developmentSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
