package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"parking-cli/internal/client"
)

const (
	KeyBaseURL  = "base_url"
	KeyInsecure = "insecure"
	KeyTimeout  = "timeout"
)

// InitConfig reads .env, the config file and PARKING_* environment variables.
func InitConfig(cfgFile string) {
	// A missing .env is normal.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".parking-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".parking-cli")
	}

	SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("parking")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: could not read config file: %v\n", err)
		}
	}
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseURL, client.DefaultBaseURL)
	v.SetDefault(KeyInsecure, false)
	v.SetDefault(KeyTimeout, time.Duration(0))
}

// ClientConfig builds the API client settings from v.
func ClientConfig(v *viper.Viper) client.ClientConfig {
	return client.ClientConfig{
		BaseURL:  strings.TrimRight(v.GetString(KeyBaseURL), "/"),
		Insecure: v.GetBool(KeyInsecure),
		Timeout:  v.GetDuration(KeyTimeout),
	}
}

// SaveBaseURL stores the API location in the config file, creating it if needed.
func SaveBaseURL(baseURL string, insecure bool) error {
	viper.Set(KeyBaseURL, strings.TrimRight(baseURL, "/"))
	viper.Set(KeyInsecure, insecure)

	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		home, herr := os.UserHomeDir()
		if herr != nil {
			return fmt.Errorf("write config: %w", err)
		}
		path := filepath.Join(home, ".parking-cli.yaml")
		return viper.WriteConfigAs(path)
	}
	return nil
}
