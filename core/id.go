package core

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

const RunIDPrefix = "run"

// NewID generates a new ULID with the specified prefix.
// Example: NewID("run") returns "run_01G0EZ1XTM37C5X11SQTDNCTM1"
func NewID(prefix string) string {
	cleanPrefix := strings.TrimSpace(strings.ToLower(prefix))
	if cleanPrefix == "" {
		panic("Prefix cannot be empty")
	}

	return fmt.Sprintf("%s_%s", cleanPrefix, ulid.Make().String())
}

// NewRunID returns the id attached to a single pipeline run
func NewRunID() string {
	return NewID(RunIDPrefix)
}

// ParseID splits an id produced by NewID into its prefix and ULID parts
func ParseID(id string) (string, ulid.ULID, error) {
	prefix, raw, ok := strings.Cut(id, "_")
	if !ok || prefix == "" {
		return "", ulid.ULID{}, fmt.Errorf("invalid id format: %s", id)
	}

	parsed, err := ulid.Parse(raw)
	if err != nil {
		return "", ulid.ULID{}, fmt.Errorf("invalid ulid in id %s: %w", id, err)
	}

	return prefix, parsed, nil
}
