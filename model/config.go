package model

import "time"

// Config stores the application configuration.
type Config struct {
	BotToken      string
	AppID         string
	DatabasePath  string
	LogWebhookURL string
	AdminRoleIDs  []string
	SweepInterval time.Duration
}
