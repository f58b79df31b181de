package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug": logger.DebugLevel,
		"info":  logger.InfoLevel,
		"warn":  logger.WarnLevel,
		"error": logger.ErrorLevel,
		"":      logger.InfoLevel,
	}

	for level, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: level}.LogLevel(), level)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "pool",
		Password: "secret",
		Database: "lootpool",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=pool password=secret dbname=lootpool sslmode=disable", p.DSN())
}
