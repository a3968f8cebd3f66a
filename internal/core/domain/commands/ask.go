package commands

import (
	"context"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
)

// Ask forwards a prompt to a text generator. The prompt argument only enforces that one is present; the whole
// remainder of the message is sent, since tokens cannot carry spaces.
type Ask struct {
	generator port.TextGenerator
	model     string
}

func NewAsk(generator port.TextGenerator, model string) *Ask {
	return &Ask{generator: generator, model: model}
}

func (a *Ask) Name() string {
	return "ask"
}

func (a *Ask) Description() string {
	return "Asks the language model a question."
}

func (a *Ask) Examples() []domain.Example {
	return []domain.Example{domain.NewExample("ask a question", "what", "is", "kubb?")}
}

func (a *Ask) Arguments() []domain.ArgumentSignature {
	return []domain.ArgumentSignature{
		domain.NewArgumentSignature("prompt", domain.StringType()),
	}
}

func (a *Ask) Call(ctx context.Context, cc *domain.Context, args []domain.ParsedArgument) error {
	l := requestLogger(cc, a.Name())
	l.Info().Msg("handling request")

	prompt := domain.ParseCommandArgs(cc.Message.Text)
	if len(args) == 0 || prompt == "" {
		l.Debug().Msg(domain.ErrEmptyPrompt.Error())
		return domain.NewCommandError("usage: ask <question>")
	}

	resp, err := a.generator.GenerateFromPrompt(ctx, []domain.Prompt{{
		Prompt: prompt,
		Author: domain.User,
		Model:  a.model,
	}})
	if err != nil {
		l.Error().Err(err).Msg("failed to generate response")
		return domain.NewCommandError("failed to generate reply")
	}

	l.Debug().
		Str("model", resp.Metadata.Model).
		Int("totalTokens", resp.Metadata.TotalTokens).
		Msg("generated response")

	if err := reply(ctx, cc, resp.Response); err != nil {
		return fmt.Errorf("ask: %w", err)
	}

	return nil
}

type AskFactory struct {
	NewGenerator func(cfg *config.Config) port.TextGenerator
}

func (f AskFactory) Make(cfg *config.Config) port.Command {
	return NewAsk(f.NewGenerator(cfg), cfg.OpenRouter.Model)
}
