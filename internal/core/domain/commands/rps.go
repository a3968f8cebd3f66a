package commands

import (
	"context"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
	"math/rand/v2"
	"slices"
)

var hands = []string{"rock", "paper", "scissors"}

// beats maps each hand to the hand it defeats.
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

type RPS struct {
	pick func() string
}

func NewRPS() *RPS {
	return &RPS{pick: func() string { return hands[rand.IntN(len(hands))] }}
}

func (r *RPS) Name() string {
	return "rps"
}

func (r *RPS) Description() string {
	return "Plays a round of rock, paper, scissors against the bot."
}

func (r *RPS) Examples() []domain.Example {
	return []domain.Example{domain.NewExample("play rock", "rock")}
}

func (r *RPS) Arguments() []domain.ArgumentSignature {
	return []domain.ArgumentSignature{
		domain.NewArgumentSignature("hand", domain.EnumType("hand", slices.Clone(hands)...)),
	}
}

func (r *RPS) Call(ctx context.Context, cc *domain.Context, args []domain.ParsedArgument) error {
	l := requestLogger(cc, r.Name())
	l.Info().Msg("handling request")

	if len(args) == 0 {
		return domain.NewCommandError("pick a hand: rock, paper or scissors")
	}

	player, _ := args[0].Value.AsEnum()
	bot := r.pick()

	var outcome string
	switch {
	case player == bot:
		outcome = "draw"
	case beats[player] == bot:
		outcome = "you win"
	default:
		outcome = "you lose"
	}

	return reply(ctx, cc, fmt.Sprintf("%s vs %s: %s", player, bot, outcome))
}

type RPSFactory struct{}

func (RPSFactory) Make(_ *config.Config) port.Command {
	return NewRPS()
}
