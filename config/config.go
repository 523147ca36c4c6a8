package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Group Janitor specifics
	Telegram TelegramConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TelegramConfig holds the bot credentials and the optional owner restriction.
type TelegramConfig struct {
	BotToken   string
	WebhookURL string

	// OwnerID and BotID jointly gate owner-restriction mode. When either is
	// zero the restriction is fully bypassed.
	OwnerID int64
	BotID   int64

	// OwnerMode is derived once at load time from OwnerID and BotID so call
	// sites never re-check field presence.
	OwnerMode bool
}

type WebhookConfig struct {
	Secret string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.OwnerID = viper.GetInt64("telegram.owner_id")
	cfg.Telegram.BotID = viper.GetInt64("telegram.bot_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if ownerID := viper.GetInt64("telegram_owner_id"); ownerID != 0 {
		cfg.Telegram.OwnerID = ownerID
	}
	if botID := viper.GetInt64("telegram_bot_id"); botID != 0 {
		cfg.Telegram.BotID = botID
	}

	// Owner mode is active only when both ids are configured.
	cfg.Telegram.OwnerMode = cfg.Telegram.OwnerID != 0 && cfg.Telegram.BotID != 0

	// Webhook
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}

	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram.bot_token is required - set TELEGRAM_BOT_TOKEN or add it to config.yaml")
	}
	if cfg.Webhook.Secret == "" {
		return nil, fmt.Errorf("webhook.secret is required - set WEBHOOK_SECRET or add it to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
}
