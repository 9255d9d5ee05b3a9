// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Origin         string
	DefaultLimit   int
	ProxyURL       string
	TLSFingerprint bool
	RequestTimeout time.Duration
	ServerPort     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       string
	LogDev         bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	origin := strings.TrimRight(strings.TrimSpace(getEnv("COMMENTS_ORIGIN", "http://localhost:3000")), "/")
	if err := validateOrigin(origin); err != nil {
		return nil, err
	}

	proxyURL := strings.TrimSpace(os.Getenv("COMMENTS_PROXY_URL"))
	if proxyURL != "" {
		if err := validateProxy(proxyURL); err != nil {
			return nil, err
		}
	}

	defaultLimit := getEnvInt("COMMENTS_DEFAULT_LIMIT", 50)
	if defaultLimit <= 0 {
		defaultLimit = 50
	}

	return &Config{
		Origin:         origin,
		DefaultLimit:   defaultLimit,
		ProxyURL:       proxyURL,
		TLSFingerprint: getEnvBool("COMMENTS_TLS_FINGERPRINT", false),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ReadTimeout:    getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogDev:         getEnvBool("LOG_DEV", false),
	}, nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid COMMENTS_ORIGIN %s: %w", origin, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid COMMENTS_ORIGIN, must be an absolute http:// or https:// URL: %s", origin)
	}
	return nil
}

func validateProxy(proxy string) error {
	if !strings.HasPrefix(proxy, "http://") && !strings.HasPrefix(proxy, "https://") && !strings.HasPrefix(proxy, "socks5://") {
		return fmt.Errorf("invalid proxy URL format, must start with http://, https:// or socks5://")
	}
	if _, err := url.Parse(proxy); err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
