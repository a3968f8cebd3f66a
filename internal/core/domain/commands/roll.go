package commands

import (
	"context"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	defaultSides = 6
	defaultCount = 1
)

type Roll struct {
	maxSides int64
	maxCount int64
	// intN returns a value in [0, n).
	intN func(n int64) int64
}

func NewRoll(maxSides, maxCount int64) *Roll {
	return &Roll{maxSides: maxSides, maxCount: maxCount, intN: rand.Int64N}
}

func (r *Roll) Name() string {
	return "roll"
}

func (r *Roll) Aliases() []string {
	return []string{"r", "dice"}
}

func (r *Roll) Description() string {
	return "Rolls dice. Defaults to a single six-sided die."
}

func (r *Roll) Examples() []domain.Example {
	return []domain.Example{
		domain.NewExample("roll a d6"),
		domain.NewExample("roll a d20", "20"),
		domain.NewExample("roll three d6", "6", "3"),
	}
}

func (r *Roll) Arguments() []domain.ArgumentSignature {
	return []domain.ArgumentSignature{
		domain.NewArgumentSignature("sides", domain.NumberType()),
		domain.NewArgumentSignature("count", domain.NumberType()),
	}
}

func (r *Roll) Call(ctx context.Context, cc *domain.Context, args []domain.ParsedArgument) error {
	l := requestLogger(cc, r.Name())

	sides, count := int64(defaultSides), int64(defaultCount)
	for _, arg := range args {
		n, _ := arg.Value.AsNumber()
		switch arg.Name {
		case "sides":
			sides = n
		case "count":
			count = n
		}
	}

	l.Info().Int64("sides", sides).Int64("count", count).Msg("handling request")

	if sides < 2 || sides > r.maxSides {
		return domain.NewCommandError("a die needs between 2 and %d sides, got %d", r.maxSides, sides)
	}

	if count < 1 || count > r.maxCount {
		return domain.NewCommandError("can roll between 1 and %d dice, got %d", r.maxCount, count)
	}

	results := make([]string, count)
	var total int64
	for i := range results {
		v := r.intN(sides) + 1
		total += v
		results[i] = strconv.FormatInt(v, 10)
	}

	text := "🎲 " + results[0]
	if count > 1 {
		text = fmt.Sprintf("🎲 %s = %d", strings.Join(results, " + "), total)
	}

	return reply(ctx, cc, text)
}

type RollFactory struct{}

func (RollFactory) Make(cfg *config.Config) port.Command {
	return NewRoll(cfg.Roll.MaxSides, cfg.Roll.MaxCount)
}
