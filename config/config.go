package config

import (
	"fmt"
	"log"

	"volunteer-platform/pkg/ai"
	"volunteer-platform/pkg/chain"
	"volunteer-platform/pkg/database/mysql"
	"volunteer-platform/pkg/database/redis"

	"github.com/spf13/viper"
)

// AppConfig 应用基础配置
type AppConfig struct {
	Name      string `mapstructure:"name"`
	Env       string `mapstructure:"env"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Timezone  string `mapstructure:"timezone"`
	SecretKey string `mapstructure:"secret_key"`
}

// MatchingConfig 匹配引擎配置
type MatchingConfig struct {
	DefaultLimit     int `mapstructure:"default_limit"`      // 默认返回的推荐人数
	MaxLimit         int `mapstructure:"max_limit"`          // 单次匹配允许的最大推荐人数
	CandidatePoolMax int `mapstructure:"candidate_pool_max"` // 参与打分的候选人上限
}

// LeaderboardConfig 排行榜配置
type LeaderboardConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
	DefaultLimit    int `mapstructure:"default_limit"`
	MaxLimit        int `mapstructure:"max_limit"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Console  bool   `mapstructure:"console"`
	File     string `mapstructure:"file"`
	Rotation struct {
		Enabled   bool `mapstructure:"enabled"`
		MaxSizeMB int  `mapstructure:"max_size_mb"`
		MaxFiles  int  `mapstructure:"max_files"`
	} `mapstructure:"rotation"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWT struct {
		Secret               string `mapstructure:"secret"`
		AccessExpiryMinutes  int    `mapstructure:"access_expiry_minutes"`
		RefreshExpiryDays    int    `mapstructure:"refresh_expiry_days"`
		Issuer               string `mapstructure:"issuer"`
		MaxConcurrentTokens  int    `mapstructure:"max_concurrent_tokens"`
		TokenRotationEnabled bool   `mapstructure:"token_rotation_enabled"`
	} `mapstructure:"jwt"`
}

// Config 完整的配置结构
type Config struct {
	App         AppConfig          `mapstructure:"app"`
	MySQL       *mysql.MySQLConfig `mapstructure:"mysql"`
	Redis       *redis.RedisConfig `mapstructure:"redis"`
	Logging     *LoggingConfig     `mapstructure:"logging"`
	Auth        *AuthConfig        `mapstructure:"auth"`
	AI          *ai.Config         `mapstructure:"ai"`
	Chain       *chain.Config      `mapstructure:"chain"`
	Matching    *MatchingConfig    `mapstructure:"matching"`
	Leaderboard *LeaderboardConfig `mapstructure:"leaderboard"`
}

var conf Config

func LoadConfig() Config {
	// 设置 Viper 配置
	viper.SetConfigName("config")   // 配置文件名称 (不需要扩展名)
	viper.SetConfigType("yaml")     // 配置文件类型
	viper.AddConfigPath("./config") // 配置文件路径
	viper.AddConfigPath(".")        // 当前目录

	// 设置环境变量前缀
	viper.SetEnvPrefix("VOLPLAT")
	viper.AutomaticEnv() // 自动读取环境变量

	// 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Fatal("配置文件未找到: config.yaml")
		} else {
			log.Fatalf("读取配置文件错误: %v", err)
		}
	}

	// 将配置绑定到结构体
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("配置解析错误: %v", err)
	}

	// 设置全局配置变量
	conf = config

	// 打印加载的配置信息（开发环境）
	if config.App.Env == "development" {
		fmt.Printf("配置文件加载成功: %s\n", viper.ConfigFileUsed())
		fmt.Printf("应用名称: %s\n", config.App.Name)
		fmt.Printf("环境: %s\n", config.App.Env)
		fmt.Printf(
			"服务地址: %s:%d\n",
			config.App.Host,
			config.App.Port,
		)
	}

	return config
}

func GetConfig() *Config {
	return &conf
}
