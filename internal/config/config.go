package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Shop struct {
		Name     string `mapstructure:"name"`
		Currency string `mapstructure:"currency"`
	} `mapstructure:"shop"`

	Storage struct {
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"storage"`

	Reports struct {
		LowStockThreshold int    `mapstructure:"low_stock_threshold"`
		RecentSales       int    `mapstructure:"recent_sales"`
		Timezone          string `mapstructure:"timezone"`
	} `mapstructure:"reports"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables: SHOPTRACK_STORAGE_DATA_DIR etc.
	v.SetEnvPrefix("shoptrack")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Sensible defaults (binary works without config file)
	v.SetDefault("shop.name", "Mobile Shop Management")
	v.SetDefault("shop.currency", "PKR")
	v.SetDefault("storage.data_dir", defaultDataDir())
	v.SetDefault("reports.low_stock_threshold", 5)
	v.SetDefault("reports.recent_sales", 10)
	// Empty timezone means the host's local zone
	v.SetDefault("reports.timezone", "")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// SHOPTRACK_DATA_DIR shorthand wins over the config file
	if dir := os.Getenv("SHOPTRACK_DATA_DIR"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if threshold := os.Getenv("SHOPTRACK_LOW_STOCK_THRESHOLD"); threshold != "" {
		if n, err := strconv.Atoi(threshold); err == nil && n > 0 {
			cfg.Reports.LowStockThreshold = n
		}
	}

	return &cfg
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shoptrack"
	}
	return filepath.Join(home, ".shoptrack")
}
