package commands

import (
	"context"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Builtin returns the factories of every command shipped with the bot. The lister is consulted by help at call
// time, so it may be populated after this call.
func Builtin(lister port.CommandLister, newGenerator func(cfg *config.Config) port.TextGenerator) []port.CommandFactory {
	return []port.CommandFactory{
		HelpFactory{Lister: lister},
		PingFactory{},
		RollFactory{},
		RPSFactory{},
		WhoisFactory{},
		AskFactory{NewGenerator: newGenerator},
		DebugFactory{},
	}
}

func requestLogger(cc *domain.Context, command string) zerolog.Logger {
	return log.With().
		Str("messageId", cc.Message.ID).
		Str("chatId", cc.Message.ChatID).
		Str("command", command).
		Logger()
}

// reply sends text and wraps a failure with domain.ErrSendingReplyFailed.
func reply(ctx context.Context, cc *domain.Context, text string) error {
	if err := cc.Reply(ctx, text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
