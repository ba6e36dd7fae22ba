package config

// RateLimitConfig 各端点组每分钟请求上限
type RateLimitConfig struct {
	API    int `json:"api" yaml:"api"`
	Search int `json:"search" yaml:"search"`
	Auth   int `json:"auth" yaml:"auth"`
}

func (c *RateLimitConfig) Limit(group string) int {
	switch group {
	case "search":
		return c.Search
	case "auth":
		return c.Auth
	default:
		return c.API
	}
}
