package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

const DefaultPage = 0
const DefaultSize = 20
const MaxSize = 2000
const DefaultSortProperty = "amount"

type Config struct {
	ServiceName string        `yaml:"serviceName"`
	Server      *ServerConfig `yaml:"server"`
	DB          *DBConfig     `yaml:"db"`
	Jaeger      *JaegerConfig `yaml:"jaeger"`
	Auth        *AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Mode   string `yaml:"mode"`
	Port   int    `yaml:"port"`
	Scheme string `yaml:"scheme"`
	Domain string `yaml:"domain"`
}

type DBConfig struct {
	// Backend is either "pg" or "mem".
	Backend  string `yaml:"backend"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string  `yaml:"type"`
		Param float64 `yaml:"param"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"logSpans"`
		LocalAgentHostPort string `yaml:"localAgentHostPort"`
	} `yaml:"reporter"`
}

type AuthConfig struct {
	Realm      string       `yaml:"realm"`
	BcryptCost int          `yaml:"bcryptCost"`
	Users      []UserConfig `yaml:"users"`
}

type UserConfig struct {
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Roles    []string `yaml:"roles"`
}

func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(err)
	}
	return conf
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	conf := &Config{}
	if err = yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}

	if conf.Server == nil {
		conf.Server = &ServerConfig{}
	}
	if conf.DB == nil {
		conf.DB = &DBConfig{}
	}
	if conf.DB.Backend == "" {
		conf.DB.Backend = "pg"
	}
	if conf.Jaeger == nil {
		conf.Jaeger = &JaegerConfig{}
	}
	if conf.Auth == nil {
		conf.Auth = &AuthConfig{}
	}
	if conf.Auth.Realm == "" {
		conf.Auth.Realm = "cashcard"
	}

	return conf, nil
}
