package commands

import (
	"context"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
)

// Whois echoes a raw user ID. Resolving the ID to a platform profile is not attempted.
type Whois struct{}

func (Whois) Name() string {
	return "whois"
}

func (Whois) Description() string {
	return "Shows the raw numeric ID of a user."
}

func (Whois) Examples() []domain.Example {
	return []domain.Example{domain.NewExample("look up a user ID", "123456789")}
}

func (Whois) Arguments() []domain.ArgumentSignature {
	return []domain.ArgumentSignature{
		domain.NewArgumentSignature("user", domain.UserType()),
	}
}

func (w Whois) Call(ctx context.Context, cc *domain.Context, args []domain.ParsedArgument) error {
	l := requestLogger(cc, w.Name())
	l.Info().Msg("handling request")

	if len(args) == 0 {
		return domain.NewCommandError("usage: whois <user id>")
	}

	id, _ := args[0].Value.AsUser()

	text := fmt.Sprintf("user id: %d", id)
	if cc.Message.Platform == domain.Discord {
		text += fmt.Sprintf(" (<@%d>)", id)
	}

	return reply(ctx, cc, text)
}

type WhoisFactory struct{}

func (WhoisFactory) Make(_ *config.Config) port.Command {
	return Whois{}
}
