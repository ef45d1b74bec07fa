package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultItemServicePort = "8085"
	defaultShutdownSeconds = 10
	defaultSSEBufferSize   = 16
)

type ServerConfig struct {
	Port string
}

// ItemServiceConfig carries everything cmd/item_service needs at startup.
type ItemServiceConfig struct {
	Server          ServerConfig
	LogLevel        string
	DevMode         bool
	SeedFile        string // empty means the embedded seed
	ShutdownTimeout time.Duration
	SSEBufferSize   int
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := strings.TrimSpace(os.Getenv("SERVER_PORT")); envPort != "" {
		port = envPort
	}
	return ServerConfig{Port: ":" + strings.TrimPrefix(port, ":")}
}

func LoadItemServiceConfig() ItemServiceConfig {
	logLevel := strings.ToLower(strings.TrimSpace(GetEnv("LOG_LEVEL", "info")))
	if logLevel == "" {
		logLevel = "info"
	}

	shutdownSeconds := GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownSeconds)
	if shutdownSeconds <= 0 {
		shutdownSeconds = defaultShutdownSeconds
	}
	bufferSize := GetEnvAsInt("SSE_BUFFER_SIZE", defaultSSEBufferSize)
	if bufferSize <= 0 {
		bufferSize = defaultSSEBufferSize
	}

	return ItemServiceConfig{
		Server:          LoadServerConfig(defaultItemServicePort),
		LogLevel:        logLevel,
		DevMode:         GetEnvAsBool("DEV_MODE", false),
		SeedFile:        strings.TrimSpace(GetEnv("ITEM_SEED_FILE", "")),
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
		SSEBufferSize:   bufferSize,
	}
}

// GetEnv returns the variable when it is set, the fallback otherwise.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := strings.TrimSpace(GetEnv(key, ""))
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsBool accepts strconv.ParseBool values plus yes/on and no/off.
func GetEnvAsBool(key string, fallback bool) bool {
	value := strings.TrimSpace(GetEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err == nil {
		return parsed
	}
	switch strings.ToLower(value) {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	default:
		return fallback
	}
}
