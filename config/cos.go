package config

// COSConfig 对象存储配置，用于发布站点地图和 RSS 静态文件。
// 字段为空时视为未启用，发布任务会跳过上传。
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"-" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"-" yaml:"secret_key"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"`
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	BaseURL    string `mapstructure:"base_url" json:"base_url" yaml:"base_url"` // CDN 或自定义域名，可选
}

// Enabled 判断对象存储是否配置完整。
func (c COSConfig) Enabled() bool {
	return c.SecretID != "" && c.SecretKey != "" && c.BucketName != "" && c.AppID != "" && c.Region != ""
}
