package config

import (
	"github.com/spf13/viper"

	"book-catalog/library"
)

type (
	Config struct {
		Data
	}

	Data struct {
		Path string
	}
)

// New builds a Config from the environment.
func New() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("catalog_data_path", library.DefaultPath)

	return &Config{
		Data: Data{
			Path: v.GetString("CATALOG_DATA_PATH"),
		},
	}
}
