package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ secondary.GuildPort = (*Client)(nil)

// FindMember resolves a guild member, state cache first then REST fetch
func (c *Client) FindMember(ctx context.Context, userID string) (*domain.GuildMember, error) {
	member, err := c.session.State.Member(c.cfg.GuildID, userID)
	if err != nil || member == nil {
		member, err = c.session.GuildMember(c.cfg.GuildID, userID, discordgo.WithContext(ctx))
		if err != nil {
			if isDiscordCode(err, discordgo.ErrCodeUnknownMember) || isDiscordCode(err, discordgo.ErrCodeUnknownUser) {
				return nil, errs.MemberNotFound
			}
			return nil, fmt.Errorf("failed to fetch guild member: %w", err)
		}
	}

	return &domain.GuildMember{
		ID:       member.User.ID,
		Username: member.User.Username,
		RoleIDs:  member.Roles,
	}, nil
}

// EnsureRole returns the id of the named role, creating it when missing
func (c *Client) EnsureRole(ctx context.Context, name string) (string, error) {
	roles, err := c.session.GuildRoles(c.cfg.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to list guild roles: %w", err)
	}
	for _, role := range roles {
		if role.Name == name {
			return role.ID, nil
		}
	}

	green := 0x2ECC71
	role, err := c.session.GuildRoleCreate(c.cfg.GuildID, &discordgo.RoleParams{
		Name:  name,
		Color: &green,
	}, discordgo.WithContext(ctx))
	if err != nil {
		if isDiscordCode(err, discordgo.ErrCodeMissingPermissions) {
			return "", errs.PermissionDenied
		}
		return "", fmt.Errorf("failed to create role %q: %w", name, err)
	}

	c.logger.Info("Created guild role", "role", name, "roleId", role.ID)
	return role.ID, nil
}

// AddMemberRole grants the role to the member
func (c *Client) AddMemberRole(ctx context.Context, userID, roleID string) error {
	err := c.session.GuildMemberRoleAdd(c.cfg.GuildID, userID, roleID, discordgo.WithContext(ctx))
	if err != nil {
		if isDiscordCode(err, discordgo.ErrCodeMissingPermissions) {
			return errs.PermissionDenied
		}
		if isDiscordCode(err, discordgo.ErrCodeUnknownMember) {
			return errs.MemberNotFound
		}
		return fmt.Errorf("failed to add member role: %w", err)
	}
	return nil
}

// SendDirectMessage opens a DM channel with the member and sends content
func (c *Client) SendDirectMessage(ctx context.Context, userID, content string) error {
	channel, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open direct message channel: %w", err)
	}
	if _, err := c.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send direct message: %w", err)
	}
	return nil
}
