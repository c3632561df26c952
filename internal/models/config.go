package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

type Config struct {
	APIBaseURL     string        `mapstructure:"api_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CurrencySymbol string        `mapstructure:"currency_symbol"`

	// Snapshot export settings
	OutputFormat      string             `mapstructure:"output_format"`
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
	KafkaBrokerList   string             `mapstructure:"kafka_broker_list"`
	RabbitMQ          RabbitMQConfig     `mapstructure:"rabbitmq"`
	Database          DatabaseConfig     `mapstructure:"database"`

	// Demo seeding settings
	SeedOrders        int `mapstructure:"seed_orders"`
	SeedItemsPerOrder int `mapstructure:"seed_items_per_order"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("api_base_url", "http://localhost:8080/api")
	viper.SetDefault("request_timeout", "10s")
	viper.SetDefault("currency_symbol", "$")
	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_path", "output")
	viper.SetDefault("output_folder", "snapshots")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("rabbitmq.exchange", "pos_snapshots")
	viper.SetDefault("seed_orders", 10)
	viper.SetDefault("seed_items_per_order", 3)

	if err := viper.ReadInConfig(); err != nil {
		// a missing default config file is fine; flags and defaults are
		// enough to run against a local backend
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
