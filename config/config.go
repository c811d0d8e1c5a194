package config

import (
	"fmt"
	"giveaway-bot/model"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the configuration from the .env file, config.yaml and
// environment variables. Environment variables override file settings.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("bot.databasePath", "data/giveaways.db")
	viper.SetDefault("bot.sweepIntervalSeconds", 5)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Info: config.yaml not found, relying on environment variables")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}
	appID := viper.GetString("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	var adminRoleIDs []string
	if raw := viper.GetString("ADMIN_ROLE_IDS"); raw != "" {
		adminRoleIDs = strings.Split(raw, ",")
	} else {
		log.Println("Warning: ADMIN_ROLE_IDS not set, giveaway commands will be refused for everyone")
	}

	return &model.Config{
		BotToken:      token,
		AppID:         appID,
		DatabasePath:  viper.GetString("bot.databasePath"),
		LogWebhookURL: viper.GetString("LOG_WEBHOOK_URL"),
		AdminRoleIDs:  adminRoleIDs,
		SweepInterval: time.Duration(viper.GetInt("bot.sweepIntervalSeconds")) * time.Second,
	}, nil
}
