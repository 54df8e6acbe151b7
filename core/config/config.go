package config

import (
	"reflect"
	"strings"

	"craft-planner/core/database"
	"craft-planner/core/logger"
	"craft-planner/core/market"
	"craft-planner/core/procurement"
	"craft-planner/core/server"
	"craft-planner/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the gamedata object store.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the owned stock database.
	Database database.Config `mapstructure:"database"`
	// Market holds configuration for the price oracle.
	Market market.Config `mapstructure:"market"`
	// Planner holds the expansion ceilings of the procurement engine.
	Planner procurement.Config `mapstructure:"planner"`
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
// Environment variables map to nested keys by replacing dots with underscores
// (MARKET_DATA_CENTER -> market.data_center).
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." || path == "" {
		envPath = ".env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every `mapstructure` key with its `default` tag,
// so AutomaticEnv can resolve keys that no config file mentions.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
