package config

import "gitlab.com/void-training.net/internal/domain"

type DiscordConfig struct {
	BotToken         string
	GuildID          string
	WebhookURL       string
	PublicKey        string
	ClientID         string
	ClientSecret     string
	OAuthRedirectURL string
	FrontendURL      string
	VerifiedRoleName string
}

func NewDiscordConfig() *DiscordConfig {
	return &DiscordConfig{
		BotToken:         getEnv("DISCORD_BOT_TOKEN", ""),
		GuildID:          getEnv("DISCORD_SERVER_ID", ""),
		WebhookURL:       getEnv("DISCORD_WEBHOOK_URL", ""),
		PublicKey:        getEnv("DISCORD_PUBLIC_KEY", ""),
		ClientID:         getEnv("DISCORD_CLIENT_ID", ""),
		ClientSecret:     getEnv("DISCORD_CLIENT_SECRET", ""),
		OAuthRedirectURL: getEnv("DISCORD_REDIRECT_URL", "http://localhost:8080/auth/discord/callback"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		VerifiedRoleName: getEnv("VERIFIED_ROLE_NAME", domain.DefaultVerifiedRole),
	}
}
