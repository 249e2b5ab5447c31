package config

import "time"

// Config 配置主体
type Config struct {
	Server                 ServerConfig           `mapstructure:"server"`
	DB                     DBConfig               `mapstructure:"database"`
	Redis                  RedisConfig            `mapstructure:"redis"`
	JWT                    JWTConfig              `mapstructure:"jwt"`
	Logstash               LogstashConfig         `mapstructure:"logstash"`
	Kafka                  KafkaConfig            `mapstructure:"kafka"`
	KafkaDashboardConsumer KafkaDashboardConsumer `mapstructure:"kafka_dashboard_consumer"`
	Dashboard              DashboardConfig        `mapstructure:"dashboard"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// LogstashConfig 远程日志，Address 为空时只输出到 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
}

type KafkaDashboardConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// DashboardConfig 商家看板
type DashboardConfig struct {
	CacheTTL                      int    `mapstructure:"cache_ttl"`
	OverviewApprovedFollowersOnly bool   `mapstructure:"overview_approved_followers_only"`
	BenchmarkCron                 string `mapstructure:"benchmark_cron"`
}

// CacheDuration cache_ttl 单位为秒，0 表示不缓存
func (c DashboardConfig) CacheDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}
