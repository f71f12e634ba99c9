package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wskproxy/core"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name               string
		payload            string
		expectedAction     string
		expectedParameters map[string]string
	}{
		{
			name:               "Action only",
			payload:            "hello",
			expectedAction:     "hello",
			expectedParameters: map[string]string{},
		},
		{
			name:               "Two pairs",
			payload:            "foo a b c d",
			expectedAction:     "foo",
			expectedParameters: map[string]string{"a": "b", "c": "d"},
		},
		{
			name:               "Trailing unpaired token is dropped",
			payload:            "foo a b c d e",
			expectedAction:     "foo",
			expectedParameters: map[string]string{"a": "b", "c": "d"},
		},
		{
			name:               "Single unpaired token is dropped",
			payload:            "foo a",
			expectedAction:     "foo",
			expectedParameters: map[string]string{},
		},
		{
			name:               "Repeated key keeps last value",
			payload:            "foo a 1 a 2",
			expectedAction:     "foo",
			expectedParameters: map[string]string{"a": "2"},
		},
		{
			name:               "Double space yields empty tokens",
			payload:            "foo  a b",
			expectedAction:     "foo",
			expectedParameters: map[string]string{"": "a"},
		},
		{
			name:               "Values are raw strings",
			payload:            `greet name "Jane count 3`,
			expectedAction:     "greet",
			expectedParameters: map[string]string{"name": `"Jane`, "count": "3"},
		},
		{
			name:               "Package qualified action",
			payload:            "utils/echo message hi",
			expectedAction:     "utils/echo",
			expectedParameters: map[string]string{"message": "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, err := ParseCommand(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAction, command.Action)
			assert.Equal(t, tt.expectedParameters, command.Parameters)
		})
	}
}

func TestParseCommand_EmptyAction(t *testing.T) {
	for _, payload := range []string{"", " x", "  "} {
		_, err := ParseCommand(payload)
		assert.ErrorIs(t, err, core.ErrEmptyAction, "payload %q", payload)
	}
}

func TestParseCommand_IsDeterministic(t *testing.T) {
	payload := "foo a b c d e"

	first, err := ParseCommand(payload)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ParseCommand(payload)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
