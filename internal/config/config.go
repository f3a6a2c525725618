package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	EndpointURL = "endpoint_url"

	// DefaultEndpointURL is the base URL of the subsidiaries API.
	DefaultEndpointURL = "https://dev-monotypeai.huhoka.com"
)

// InitConfig initializes the configuration
func InitConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".subsidiaries")

	viper.SetDefault(EndpointURL, DefaultEndpointURL)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// SetEndpointURL sets the API base URL in the configuration file
func SetEndpointURL(url string) error {
	viper.Set(EndpointURL, url)
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(home, ".subsidiaries.yaml")
	return viper.WriteConfigAs(configPath)
}

// GetEndpointURL returns the API base URL from the configuration
func GetEndpointURL() string {
	url := viper.GetString(EndpointURL)
	if url == "" {
		return DefaultEndpointURL
	}
	return url
}
