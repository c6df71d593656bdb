package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration, read from app.env or the
// environment.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	PlacesAPIKey  string        `mapstructure:"PLACES_API_KEY"`
	PlacesBaseURL string        `mapstructure:"PLACES_BASE_URL"`
	PlacesTimeout time.Duration `mapstructure:"PLACES_TIMEOUT"`

	// Pacing knobs. The upstream token warm-up and rate limits are not
	// documented, so these are configurable rather than hard-coded.
	PageTokenDelay        time.Duration `mapstructure:"PAGE_TOKEN_DELAY"`
	InterQueryDelay       time.Duration `mapstructure:"INTER_QUERY_DELAY"`
	InterDestinationDelay time.Duration `mapstructure:"INTER_DESTINATION_DELAY"`

	MaxPerDestination int    `mapstructure:"MAX_PER_DESTINATION"`
	DestinationsFile  string `mapstructure:"DESTINATIONS_FILE"`
}

// LoadConfig reads configuration from the given directory and from the
// environment. Environment variables take precedence over the file.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")
	viper.SetDefault("PLACES_TIMEOUT", "10s")
	viper.SetDefault("PAGE_TOKEN_DELAY", "2s")
	viper.SetDefault("INTER_QUERY_DELAY", "500ms")
	viper.SetDefault("INTER_DESTINATION_DELAY", "2s")
	viper.SetDefault("MAX_PER_DESTINATION", 30)
	viper.SetDefault("DESTINATIONS_FILE", "configs/destinations.json")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
