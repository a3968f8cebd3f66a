package command

import (
	"context"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
)

// Holder owns a single command and guards it with argument validation.
type Holder struct {
	inner port.Command
}

func NewHolder(cmd port.Command) *Holder {
	return &Holder{inner: cmd}
}

func (h *Holder) Command() port.Command {
	return h.inner
}

// TryRun pairs the raw tokens positionally with the command's declared arguments and calls the command only if
// every pair parses. Tokens beyond the declared arguments are dropped and declared arguments without a token are
// skipped. The first failing argument is reported as a *domain.ParsingArgError; errors returned by the command
// itself are passed through unchanged.
func (h *Holder) TryRun(ctx context.Context, cc *domain.Context, args []string) error {
	parsed, err := h.parseArgs(args)
	if err != nil {
		return err
	}

	return h.inner.Call(ctx, cc, parsed)
}

func (h *Holder) parseArgs(args []string) ([]domain.ParsedArgument, error) {
	expected := h.inner.Arguments()

	n := min(len(args), len(expected))
	parsed := make([]domain.ParsedArgument, 0, n)

	for i := range n {
		arg, ok := expected[i].Parse(args[i])
		if !ok {
			return nil, domain.NewParsingArgError(expected[i].Name, expected[i].Type, args[i])
		}
		parsed = append(parsed, arg)
	}

	return parsed, nil
}
