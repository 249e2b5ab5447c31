package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: 9000
database:
  dsn: "root:root@tcp(127.0.0.1:3306)/marketplace?parseTime=true"
redis:
  addr: "127.0.0.1:6379"
jwt:
  secret: "secret"
kafka:
  brokers: ["127.0.0.1:9092"]
kafka_dashboard_consumer:
  topic: "canal_marketplace"
  group_id: "dashboard"
dashboard:
  cache_ttl: 120
  overview_approved_followers_only: true
`

func loadFromString(t *testing.T, content string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return unmarshal(v)
}

func TestUnmarshal(t *testing.T) {
	cfg, err := loadFromString(t, sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.DB.MaxOpen)
	assert.Equal(t, []string{"127.0.0.1:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "dashboard", cfg.KafkaDashboardConsumer.GroupID)
	assert.True(t, cfg.Dashboard.OverviewApprovedFollowersOnly)
	assert.Equal(t, 2*time.Minute, cfg.Dashboard.CacheDuration())
	assert.Equal(t, "0 0 0 * * *", cfg.Dashboard.BenchmarkCron)
	assert.Equal(t, "logstash-marketplace", cfg.Logstash.Index)
}

func TestValidate(t *testing.T) {
	_, err := loadFromString(t, "server:\n  port: 9000\n")
	assert.Error(t, err)

	cfg := &Config{Server: ServerConfig{Port: 0}, DB: DBConfig{DSN: "dsn"}}
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	assert.NoError(t, cfg.Validate())

	cfg.Dashboard.CacheTTL = -1
	assert.Error(t, cfg.Validate())
}
