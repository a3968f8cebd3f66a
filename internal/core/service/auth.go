package service

import (
	"context"
	"fmt"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
	"slices"

	"github.com/rs/zerolog/log"
)

type Authorizer interface {
	IsAuthorized(ctx context.Context, message *domain.Message) bool
}

// ChatAuthorizer admits messages from allow-listed chats. An empty allow-list admits every chat.
type ChatAuthorizer struct {
	allowlist     []string
	adminUsername string
	sender        port.TextSender
}

func NewAuthorizer(allowlist []string, adminUsername string, sender port.TextSender) *ChatAuthorizer {
	return &ChatAuthorizer{
		allowlist:     allowlist,
		adminUsername: adminUsername,
		sender:        sender,
	}
}

const forbidden = "You are not authorized to use this bot. Please contact %s with this ID to get access: %s"

func (a *ChatAuthorizer) IsAuthorized(ctx context.Context, message *domain.Message) bool {
	if len(a.allowlist) == 0 || slices.Contains(a.allowlist, message.ChatID) {
		return true
	}

	log.Info().Str("chatId", message.ChatID).Msg("rejected message from chat not on allow-list")

	admin := a.adminUsername
	if admin == "" {
		admin = "the bot admin"
	}

	err := a.sender.SendMessageReply(ctx, message, fmt.Sprintf(forbidden, admin, message.ChatID))
	if err != nil {
		log.Err(err).Msg("failed to send unauthorized warning")
	}

	return false
}
