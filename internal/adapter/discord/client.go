package discord

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"gitlab.com/void-training.net/internal/config"
	"gitlab.com/void-training.net/internal/core/ports/primary"
)

// Client wraps a discordgo session scoped to the configured guild. The
// session is used REST-only; no gateway connection is opened.
type Client struct {
	session *discordgo.Session
	cfg     *config.DiscordConfig
	logger  primary.Logger
}

// NewClient creates a Discord client authenticated with the bot token
func NewClient(cfg *config.DiscordConfig, logger primary.Logger) (*Client, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &Client{
		session: session,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// parseWebhookURL extracts the id and token from a full webhook URL of the
// form https://discord.com/api/webhooks/<id>/<token>
func parseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid webhook url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 3 || parts[len(parts)-3] != "webhooks" {
		return "", "", fmt.Errorf("invalid webhook url path: %s", u.Path)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

func isDiscordCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == code
	}
	return false
}
