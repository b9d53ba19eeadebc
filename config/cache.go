package config

// RedisConfig Redis 连接配置，用于浏览量计数、热门排行和防刷去重。
type RedisConfig struct {
	Address      string `mapstructure:"address" json:"address" yaml:"address"`
	Password     string `mapstructure:"password" json:"-" yaml:"password"`
	DB           int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize     int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
	DialTimeout  int    `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout"` // 秒
	ReadTimeout  int    `mapstructure:"readTimeout" json:"readTimeout" yaml:"readTimeout"` // 秒
	WriteTimeout int    `mapstructure:"writeTimeout" json:"writeTimeout" yaml:"writeTimeout"`
}

// ViewSyncConfig 浏览量从 Redis 回写数据库的任务配置。
type ViewSyncConfig struct {
	// BatchSize 单条 UPDATE ... CASE WHEN 语句覆盖的记录数。
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`

	// ConcurrencyLevel 并发执行批次更新的 worker 数量。
	ConcurrencyLevel int `mapstructure:"concurrencyLevel" json:"concurrencyLevel" yaml:"concurrencyLevel"`

	// ScanBatchSize 传给 Redis SCAN 的 COUNT 提示值。
	ScanBatchSize int64 `mapstructure:"scanBatchSize" json:"scanBatchSize" yaml:"scanBatchSize"`
}
