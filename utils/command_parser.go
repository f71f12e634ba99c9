package utils

import (
	"fmt"
	"strings"

	"wskproxy/core"
	"wskproxy/models"
)

// ParseCommand splits a slash command payload of the form
//
//	<action-name> [<param-name> <param-value>]*
//
// on single spaces. Tokens after the action are paired positionally and a trailing
// token without a value is dropped. Repeated spaces produce empty tokens, which are
// kept as-is; there is no quoting.
func ParseCommand(payload string) (models.ParsedCommand, error) {
	tokens := strings.Split(payload, " ")

	action := tokens[0]
	if action == "" {
		return models.ParsedCommand{}, fmt.Errorf("payload %q: %w", payload, core.ErrEmptyAction)
	}

	parameters := make(map[string]string, (len(tokens)-1)/2)
	for i := 1; i+1 < len(tokens); i += 2 {
		parameters[tokens[i]] = tokens[i+1]
	}

	return models.ParsedCommand{
		Action:     action,
		Parameters: parameters,
	}, nil
}
