package main

import (
	"time"

	"github.com/rendau/apic/apicTools"
	"github.com/spf13/viper"
)

type confSt struct {
	Debug       bool          `mapstructure:"DEBUG"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	LogHttp     bool          `mapstructure:"LOG_HTTP"`
	HttpTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
	FixtureMode string        `mapstructure:"FIXTURE_MODE"`
	RedisUrl    string        `mapstructure:"REDIS_URL"`
	RedisPsw    string        `mapstructure:"REDIS_PSW"`
	RedisDb     int           `mapstructure:"REDIS_DB"`
}

var defaultConf = confSt{
	LogLevel:    "warn",
	HttpTimeout: 30 * time.Second,
}

// loadConf reads the config from the environment and, if set, from the file
// given in CONF_PATH.
func loadConf() (*confSt, error) {
	v := viper.New()

	conf := defaultConf

	apicTools.SetViperDefaultsFromObj(v, &conf)

	v.SetEnvPrefix("APIC")
	v.AutomaticEnv()

	if confPath := v.GetString("CONF_PATH"); confPath != "" {
		v.SetConfigFile(confPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}

	return &conf, nil
}
