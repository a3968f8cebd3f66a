package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsingArgError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParsingArgError
		want string
	}{
		{
			name: "number",
			err:  NewParsingArgError("count", NumberType(), "abc"),
			want: "expected a Number for `count`, got `abc`",
		},
		{
			name: "user",
			err:  NewParsingArgError("user", UserType(), "-1"),
			want: "expected a User ID for `user`, got `-1`",
		},
		{
			name: "enum",
			err:  NewParsingArgError("hand", EnumType("hand", "rock", "paper"), "Rock"),
			want: "expected one of hand (rock|paper) for `hand`, got `Rock`",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", NewCommandError("dice must have %d sides at most", 100))

	var cmdErr *CommandError
	require.ErrorAs(t, wrapped, &cmdErr)
	assert.Equal(t, "dice must have 100 sides at most", cmdErr.Message)

	var parseErr *ParsingArgError
	assert.False(t, errors.As(wrapped, &parseErr))
}
