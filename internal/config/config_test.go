package config_test

import (
	"testing"

	"github.com/shareit-hub/service-shareit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "localhost", cfg.DBConfig.Host)
	assert.Equal(t, "disable", cfg.DBConfig.SSLMode)
	assert.False(t, cfg.KafkaConfig.Enabled())
	assert.Equal(t, "booking.events", cfg.KafkaConfig.Topic)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHAREIT_SERVICE_PORT", ":8081")
	t.Setenv("SHAREIT_APP_ENV", "production")
	t.Setenv("SHAREIT_DB_HOST", "db.internal")
	t.Setenv("SHAREIT_DB_NAME", "shareit_prod")
	t.Setenv("SHAREIT_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	t.Setenv("SHAREIT_KAFKA_TOPIC", "shareit.bookings")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "db.internal", cfg.DBConfig.Host)
	assert.Equal(t, "shareit_prod", cfg.DBConfig.DBName)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaConfig.Brokers)
	assert.True(t, cfg.KafkaConfig.Enabled())
	assert.Equal(t, "shareit.bookings", cfg.KafkaConfig.Topic)
}
