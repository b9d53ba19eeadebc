package config

import "github.com/Xushengqwer/go-common/config"

// SiteConfig 是外贸站点后台服务的根配置，对应 config.*.yaml 的顶层结构。
type SiteConfig struct {
	ZapConfig      config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig  config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig   config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig   config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	ViewSyncConfig ViewSyncConfig       `mapstructure:"viewSyncConfig" json:"viewSyncConfig" yaml:"viewSyncConfig"`
	MySQLConfig    MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig    RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig    KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig      COSConfig            `mapstructure:"feedCosConfig" json:"feedCosConfig" yaml:"feedCosConfig"`
	SiteInfo       SiteInfo             `mapstructure:"siteInfo" json:"siteInfo" yaml:"siteInfo"`
	ContactLimit   ContactLimitConfig   `mapstructure:"contactLimit" json:"contactLimit" yaml:"contactLimit"`
}
