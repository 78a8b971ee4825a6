package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/funnelgen/funnelgen-manager/internal/api/http"
	"github.com/funnelgen/funnelgen-manager/internal/auth"
	"github.com/funnelgen/funnelgen-manager/internal/rollupcheck"
	"github.com/funnelgen/funnelgen-manager/internal/store"
	"github.com/funnelgen/funnelgen-manager/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB          store.Config       `mapstructure:"mysql"`
	Logger      log.Config         `mapstructure:"logger"`
	HTTP        httpapi.Config     `mapstructure:"http"`
	Auth        auth.Config        `mapstructure:"auth"`
	RollupCheck rollupcheck.Config `mapstructure:"rollup_check"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/funnelgen-manager")
		viper.AddConfigPath("/etc/funnelgen-manager")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Construct the MySQL DSN from individual env vars when it is not set.
	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")

		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
			}
		}
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Auth
	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")

	// Rollup check worker
	viper.BindEnv("rollup_check.worker_interval", "ROLLUP_CHECK_WORKER_INTERVAL")
	viper.BindEnv("rollup_check.batch_size", "ROLLUP_CHECK_BATCH_SIZE")
	viper.BindEnv("rollup_check.repair", "ROLLUP_CHECK_REPAIR")
}
