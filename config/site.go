package config

// SiteInfo 站点公开信息，用于站点地图、RSS、JSON-LD 以及 WhatsApp 链接。
type SiteInfo struct {
	BaseURL        string `mapstructure:"baseURL" json:"baseURL" yaml:"baseURL"` // 例如 https://www.example.com
	Name           string `mapstructure:"name" json:"name" yaml:"name"`
	Description    string `mapstructure:"description" json:"description" yaml:"description"`
	WhatsAppNumber string `mapstructure:"whatsAppNumber" json:"whatsAppNumber" yaml:"whatsAppNumber"`
	Currency       string `mapstructure:"currency" json:"currency" yaml:"currency"` // JSON-LD Offer 的币种，默认 USD
	Language       string `mapstructure:"language" json:"language" yaml:"language"`
}

// ContactLimitConfig 联系表单的按 IP 限流配置。
type ContactLimitConfig struct {
	// MaxPerWindow 每个窗口内允许的提交次数。
	MaxPerWindow int `mapstructure:"maxPerWindow" json:"maxPerWindow" yaml:"maxPerWindow"`
	// WindowSeconds 窗口长度（秒）。
	WindowSeconds int `mapstructure:"windowSeconds" json:"windowSeconds" yaml:"windowSeconds"`
}
