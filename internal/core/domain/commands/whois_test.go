package commands

import (
	"testing"

	"kubbot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWhois(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		token    string
		want     string
	}{
		{name: "telegram", platform: domain.Telegram, token: "123", want: "user id: 123"},
		{name: "discord mentions", platform: domain.Discord, token: "80351110224678912",
			want: "user id: 80351110224678912 (<@80351110224678912>)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := new(MockSender)
			cc := newContext(ms, "/whois "+tc.token)
			cc.Message.Platform = tc.platform
			ms.On("SendMessageReply", mock.Anything, cc.Message, tc.want).Return(nil).Once()

			require.NoError(t, run(t, WhoisFactory{}.Make(testConfig()), cc, tc.token))
			ms.AssertExpectations(t)
		})
	}
}

func TestWhois_Invalid(t *testing.T) {
	ms := new(MockSender)

	err := run(t, Whois{}, newContext(ms, "/whois -1"), "-1")
	var parseErr *domain.ParsingArgError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "user", parseErr.Name)

	err = run(t, Whois{}, newContext(ms, "/whois"))
	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "usage: whois <user id>", cmdErr.Message)

	ms.AssertNotCalled(t, "SendMessageReply", mock.Anything, mock.Anything, mock.Anything)
}
