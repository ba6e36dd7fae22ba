package config

// OAuthConfig 外部 OAuth 提供方配置，登录成功后只负责把 subject id 落到 profile
type OAuthConfig struct {
	UserInfoURL string `json:"userinfo_url" yaml:"userinfo_url"`
}
