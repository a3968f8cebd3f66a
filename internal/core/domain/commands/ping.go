package commands

import (
	"context"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
)

type Ping struct{}

func (Ping) Name() string {
	return "ping"
}

func (Ping) Description() string {
	return "Checks that the bot is alive."
}

func (Ping) Arguments() []domain.ArgumentSignature {
	return nil
}

func (p Ping) Call(ctx context.Context, cc *domain.Context, _ []domain.ParsedArgument) error {
	l := requestLogger(cc, p.Name())
	l.Info().Msg("handling request")

	return reply(ctx, cc, "pong")
}

type PingFactory struct{}

func (PingFactory) Make(_ *config.Config) port.Command {
	return Ping{}
}
