package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Cassandra CassandraConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type CassandraConfig struct {
	Host        string
	Datacenter  string
	Consistency string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-review")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CASSANDRA_HOST", "127.0.0.1")
	viper.SetDefault("CASSANDRA_DATACENTER", "datacenter1")
	viper.SetDefault("CASSANDRA_CONSISTENCY", "quorum")

	// .env is optional; environment variables and defaults cover the rest
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Cassandra: CassandraConfig{
			Host:        viper.GetString("CASSANDRA_HOST"),
			Datacenter:  viper.GetString("CASSANDRA_DATACENTER"),
			Consistency: viper.GetString("CASSANDRA_CONSISTENCY"),
		},
	}

	return config, nil
}
