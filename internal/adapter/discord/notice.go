package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
)

var _ secondary.NoticePort = (*Client)(nil)

const (
	colorPassed = 0x7C3AED
	colorFailed = 0xEF4444
)

// PostSubmissionNotice posts the new-submission embed with approve/deny
// buttons to the configured review-channel webhook.
func (c *Client) PostSubmissionNotice(ctx context.Context, notice *domain.SubmissionNotice) error {
	webhookID, webhookToken, err := parseWebhookURL(c.cfg.WebhookURL)
	if err != nil {
		return err
	}

	sub := notice.Submission
	color := colorFailed
	statusText := "❌ FAILED"
	if sub.Passed {
		color = colorPassed
		statusText = "✅ PASSED"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎯 New Mod Training Submission",
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Username", Value: sub.Username, Inline: true},
			{Name: "Score", Value: fmt.Sprintf("%.1f%%", sub.Score), Inline: true},
			{Name: "Status", Value: statusText, Inline: true},
			{Name: "User ID", Value: sub.UserID},
			{Name: "Email", Value: sub.UserEmail},
			{Name: "Submitted", Value: fmt.Sprintf("<t:%d:R>", sub.CreatedAt.Unix())},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Submission ID: " + sub.ID.String()},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ Approve",
					Style:    discordgo.SuccessButton,
					CustomID: notice.ApproveKey,
				},
				discordgo.Button{
					Label:    "❌ Deny",
					Style:    discordgo.DangerButton,
					CustomID: notice.DenyKey,
				},
				discordgo.Button{
					Label: "View Admin Panel",
					Style: discordgo.LinkButton,
					URL:   notice.AdminPanelURL,
				},
			},
		},
	}

	_, err = c.session.WebhookExecute(webhookID, webhookToken, false, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}

	c.logger.Info("Submission notice delivered", "submissionId", sub.ID)
	return nil
}
