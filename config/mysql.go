package config

// SourceConfig 单个数据源（主库或从库）的连接配置。
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// 以下三项为空时沿用 MySQLConfig 中的共享设置
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 托管数据库的连接配置。
// - Write 为具备管理权限的主库连接，所有后台写操作走这里。
// - Read 为只读副本，为空时不启用读写分离。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`

	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
