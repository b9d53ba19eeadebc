package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	MessageReceived string `mapstructure:"messageReceived" yaml:"messageReceived"` // 新询盘通知（WhatsApp/邮件通知渠道消费）
	MessageReplied  string `mapstructure:"messageReplied" yaml:"messageReplied"`   // 通知渠道回传：询盘已回复
	ProductChanged  string `mapstructure:"productChanged" yaml:"productChanged"`   // 产品新增/更新/删除
}
