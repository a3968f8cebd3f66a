package commands

import (
	"context"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/domain/command"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHelpRegistry(t *testing.T) (*command.Registry, *Help) {
	t.Helper()

	reg := command.NewRegistry()
	help := HelpFactory{Lister: reg}.Make(testConfig()).(*Help)

	require.NoError(t, reg.Register(help))
	require.NoError(t, reg.Register(Ping{}))
	require.NoError(t, reg.Register(RollFactory{}.Make(testConfig())))

	return reg, help
}

func TestHelp_Overview(t *testing.T) {
	_, help := newHelpRegistry(t)
	ms := new(MockSender)
	cc := newContext(ms, "/help")

	var got string
	ms.On("SendMessageReply", mock.Anything, cc.Message, mock.Anything).
		Run(func(args mock.Arguments) { got = args.String(2) }).
		Return(nil).Once()

	require.NoError(t, run(t, help, cc))

	assert.Equal(t, "Available commands:\n"+
		" - /help: Lists all commands, or shows details for one command.\n"+
		" - /ping: Checks that the bot is alive.\n"+
		" - /roll: Rolls dice. Defaults to a single six-sided die.\n"+
		"\nUse /help <command> for details.", got)
	ms.AssertExpectations(t)
}

func TestHelp_Details(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		token    string
		want     string
	}{
		{
			name:     "command with arguments, aliases and examples",
			platform: domain.Telegram,
			token:    "roll",
			want: "/roll <sides: Number> <count: Number>\n" +
				"aliases: r, dice\n" +
				"Rolls dice. Defaults to a single six-sided die.\n" +
				"examples:\n" +
				" - /roll: roll a d6\n" +
				" - /roll 20: roll a d20\n" +
				" - /roll 6 3: roll three d6",
		},
		{
			name:     "alias with prefix on discord",
			platform: domain.Discord,
			token:    "!r",
			want: "!roll <sides: Number> <count: Number>\n" +
				"aliases: r, dice\n" +
				"Rolls dice. Defaults to a single six-sided die.\n" +
				"examples:\n" +
				" - !roll: roll a d6\n" +
				" - !roll 20: roll a d20\n" +
				" - !roll 6 3: roll three d6",
		},
		{
			name:     "command without extras",
			platform: domain.Telegram,
			token:    "PING",
			want:     "/ping\nChecks that the bot is alive.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, help := newHelpRegistry(t)
			ms := new(MockSender)
			cc := newContext(ms, "help "+tc.token)
			cc.Message.Platform = tc.platform

			ms.On("SendMessageReply", mock.Anything, cc.Message, tc.want).Return(nil).Once()

			require.NoError(t, run(t, help, cc, tc.token))
			ms.AssertExpectations(t)
		})
	}
}

func TestHelp_UnknownCommand(t *testing.T) {
	_, help := newHelpRegistry(t)
	ms := new(MockSender)
	cc := newContext(ms, "/help nope")

	err := run(t, help, cc, "nope")

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "unknown command `nope`, try /help", cmdErr.Message)
	ms.AssertNotCalled(t, "SendMessageReply", mock.Anything, mock.Anything, mock.Anything)
}

type bareCommand struct{}

func (bareCommand) Name() string                          { return "bare" }
func (bareCommand) Arguments() []domain.ArgumentSignature { return nil }
func (bareCommand) Call(context.Context, *domain.Context, []domain.ParsedArgument) error {
	return nil
}

func TestDetails_DefaultDescription(t *testing.T) {
	assert.Equal(t, "/bare\n[no description provided]", details(bareCommand{}, "/"))
}
