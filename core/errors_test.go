package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRequestError(t *testing.T) {
	assert.True(t, IsRequestError(ErrMissingField))
	assert.True(t, IsRequestError(fmt.Errorf("payload %q: %w", " x", ErrEmptyAction)))
	assert.False(t, IsRequestError(errors.New("connection refused")))
	assert.False(t, IsRequestError(nil))
}
