package commands

import (
	"context"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
	"strings"
)

type Help struct {
	lister   port.CommandLister
	prefixes map[domain.Platform]string
}

func NewHelp(lister port.CommandLister, prefixes map[domain.Platform]string) *Help {
	return &Help{lister: lister, prefixes: prefixes}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Aliases() []string {
	return []string{"h", "?"}
}

func (h *Help) Description() string {
	return "Lists all commands, or shows details for one command."
}

func (h *Help) Examples() []domain.Example {
	return []domain.Example{
		domain.NewExample("list all commands"),
		domain.NewExample("show how to use roll", "roll"),
	}
}

func (h *Help) Arguments() []domain.ArgumentSignature {
	return []domain.ArgumentSignature{
		domain.NewArgumentSignature("command", domain.StringType()),
	}
}

func (h *Help) Call(ctx context.Context, cc *domain.Context, args []domain.ParsedArgument) error {
	l := requestLogger(cc, h.Name())
	l.Info().Int("args", len(args)).Msg("handling request")

	prefix := h.prefixes[cc.Message.Platform]

	if len(args) == 0 {
		return reply(ctx, cc, h.overview(prefix))
	}

	name, _ := args[0].Value.AsString()
	name = strings.TrimPrefix(name, prefix)

	cmd, ok := h.lister.Lookup(name)
	if !ok {
		return domain.NewCommandError("unknown command `%s`, try %s%s", name, prefix, h.Name())
	}

	return reply(ctx, cc, details(cmd, prefix))
}

func (h *Help) overview(prefix string) string {
	sb := &strings.Builder{}
	sb.WriteString("Available commands:\n")

	for _, cmd := range h.lister.Commands() {
		fmt.Fprintf(sb, " - %s%s: %s\n", prefix, cmd.Name(), port.DescriptionOf(cmd))
	}

	fmt.Fprintf(sb, "\nUse %s%s <command> for details.", prefix, h.Name())

	return sb.String()
}

func details(cmd port.Command, prefix string) string {
	sb := &strings.Builder{}

	sb.WriteString(prefix + cmd.Name())
	for _, sig := range cmd.Arguments() {
		sb.WriteString(" " + sig.String())
	}
	sb.WriteString("\n")

	if aliases := port.AliasesOf(cmd); len(aliases) > 0 {
		fmt.Fprintf(sb, "aliases: %s\n", strings.Join(aliases, ", "))
	}

	sb.WriteString(port.DescriptionOf(cmd) + "\n")

	examples := port.ExamplesOf(cmd)
	if len(examples) > 0 {
		sb.WriteString("examples:\n")
	}
	for _, ex := range examples {
		invocation := strings.TrimSpace(prefix + cmd.Name() + " " + strings.Join(ex.Arguments, " "))
		fmt.Fprintf(sb, " - %s: %s\n", invocation, ex.Description)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

type HelpFactory struct {
	Lister port.CommandLister
}

func (f HelpFactory) Make(cfg *config.Config) port.Command {
	return NewHelp(f.Lister, map[domain.Platform]string{
		domain.Telegram: cfg.Telegram.Prefix,
		domain.Discord:  cfg.Discord.Prefix,
	})
}
