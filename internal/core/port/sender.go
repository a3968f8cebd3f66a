package port

import (
	"context"
	"kubbot/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a reply to the given message, split into several messages if the platform limit
	// requires it.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) error
}
