package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
)

const (
	ServerModeFake = "fake"
	ServerModeHTTP = "http"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	HTTP   HTTPConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

// ServerConfig selects and tunes the remote Pix service connection.
type ServerConfig struct {
	Mode             string
	URL              string
	Timeout          time.Duration
	FakeResponseCode domain_pix.ResponseCode
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Load reads .env (when present) and the process environment, applies
// defaults and reports every invalid value at once.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := &Config{}
	cfg.App.Env = ldr.getString("APP_ENV", "development")
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info")

	cfg.Server.Mode = strings.ToLower(ldr.getString("PIX_SERVER_MODE", ServerModeFake))
	cfg.Server.URL = ldr.getString("PIX_SERVER_URL", "")
	cfg.Server.Timeout = ldr.getMillis("PIX_SERVER_TIMEOUT_MS", 5000)
	cfg.Server.FakeResponseCode = domain_pix.ResponseCode(ldr.getString("PIX_FAKE_RESPONSE_CODE", string(domain_pix.CodeSuccess)))

	cfg.HTTP.Addr = ldr.getString("HTTP_ADDR", ":8080")
	cfg.HTTP.ShutdownTimeout = ldr.getMillis("HTTP_SHUTDOWN_TIMEOUT_MS", 5000)

	switch cfg.Server.Mode {
	case ServerModeFake:
	case ServerModeHTTP:
		if cfg.Server.URL == "" {
			ldr.addError("PIX_SERVER_URL is required when PIX_SERVER_MODE=http")
		}
	default:
		ldr.addError(fmt.Sprintf("PIX_SERVER_MODE must be %q or %q", ServerModeFake, ServerModeHTTP))
	}

	if err := ldr.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) getString(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		if val = strings.TrimSpace(val); val != "" {
			return val
		}
	}
	return def
}

func (l *envLoader) getMillis(key string, def int) time.Duration {
	raw := l.getString(key, "")
	if raw == "" {
		return time.Duration(def) * time.Millisecond
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		l.addError(fmt.Sprintf("%s must be a positive integer", key))
		return time.Duration(def) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

func (l *envLoader) addError(err string) {
	l.errs = append(l.errs, err)
}
