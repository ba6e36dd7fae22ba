package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App             `json:"app" yaml:"app"`
	MySQL     *MySQL           `json:"mysql" yaml:"mysql"`
	Redis     *Redis           `json:"redis" yaml:"redis"`
	Jwt       *Jwt             `json:"jwt" yaml:"jwt"`
	Oss       *OssConfig       `json:"oss" yaml:"oss"`
	OAuth     *OAuthConfig     `json:"oauth" yaml:"oauth"`
	Server    *Server          `json:"server" yaml:"server"`
	RateLimit *RateLimitConfig `json:"ratelimit" yaml:"ratelimit"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("failed to parse config file %s: %v", filename, err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
