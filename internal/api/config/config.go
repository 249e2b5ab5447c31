package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量 MARKETPLACE_* 覆盖文件配置
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	setDefaults(v)

	v.SetEnvPrefix("marketplace")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return err
	}

	Cfg = cfg
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 100)
	v.SetDefault("database.max_lifetime", 3600)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("logstash.index", "logstash-marketplace")
	v.SetDefault("dashboard.cache_ttl", 60)
	v.SetDefault("dashboard.overview_approved_followers_only", false)
	v.SetDefault("dashboard.benchmark_cron", "0 0 0 * * *")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验启动必需的配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.DB.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.Dashboard.CacheTTL < 0 {
		return fmt.Errorf("invalid dashboard.cache_ttl: %d", c.Dashboard.CacheTTL)
	}
	return nil
}
