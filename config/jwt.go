package config

// Jwt 令牌配置
type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int    `json:"access_expire" yaml:"access_expire"`   // 秒
	RefreshExpire int    `json:"refresh_expire" yaml:"refresh_expire"` // 秒
}
