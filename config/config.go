// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"verdant/plantcare-api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	dbPath         = pflag.String("db-path", "plantcare.db", "Path to the SQLite database file")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.legacy_secrets", "jwt_legacy_secrets")

	v.BindEnv("auth.allow_test_tokens", "auth_allow_test_tokens")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.dsn", "database_dsn")

	v.BindEnv("storage.type", "storage_type")
	v.BindEnv("storage.local_dir", "storage_local_dir")

	v.BindEnv("upload.max_size", "upload_max_size")

	v.BindEnv("aws.access_key", "aws_access_key")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.bucket", "aws_bucket")
	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.cloudfront_url", "aws_cloudfront_url")

	v.BindEnv("ai.api_key", "gemini_api_key")
	v.BindEnv("ai.model", "ai_model")
	v.BindEnv("ai.timeout", "ai_timeout")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", *dbPath)

	v.SetDefault("auth.allow_test_tokens", false)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_dir", "uploads")

	v.SetDefault("upload.max_size", 5)

	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	if v.GetString("jwt.secret") == "" {
		secret, err := util.GenerateToken(64)
		if err != nil {
			return fmt.Errorf("failed to generate a JWT secret, %w", err)
		}

		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + secret + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetBool("auth.allow_test_tokens") && gin.Mode() == gin.ReleaseMode {
		return errors.New("auth.allow_test_tokens can't be enabled in release mode")
	}

	if !slices.Contains(validDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	switch v.GetString("storage.type") {
	case "s3":
		{
			if v.GetString("aws.access_key") == "" {
				return errors.New("access key can't be empty")
			}
			if v.GetString("aws.secret_access_key") == "" {
				return errors.New("secret access key can't be empty")
			}
			if v.GetString("aws.bucket") == "" {
				return errors.New("bucket can't be empty")
			}
			if v.GetString("aws.region") == "" {
				return errors.New("region can't be empty")
			}
			if v.GetString("aws.cloudfront_url") == "" {
				return errors.New("cloudfront url can't be empty")
			}
		}
	case "local":
		{
			if v.GetString("storage.local_dir") == "" {
				return errors.New("storage.local_dir can't be empty")
			}
		}
	default:
		return errors.New("invalid storage type provided")
	}

	if v.GetString("ai.api_key") == "" {
		fmt.Println("[WARNING]: No Gemini API key configured. The plant analysis endpoint will be disabled")
	}

	if v.GetInt("ai.timeout") <= 0 {
		return errors.New("ai.timeout must be bigger than 0")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
