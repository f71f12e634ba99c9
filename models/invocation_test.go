package models

import (
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvocationRequest_UnmarshalJSON(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		var request InvocationRequest
		err := json.Unmarshal([]byte(`{"payload":"hello name world","response_url":"https://hooks.example.com/1","auth":"user:pass"}`), &request)
		require.NoError(t, err)

		assert.Equal(t, mo.Some("hello name world"), request.Payload)
		assert.Equal(t, mo.Some("https://hooks.example.com/1"), request.ResponseURL)
		assert.Equal(t, mo.Some("user:pass"), request.Auth)
	})

	t.Run("absent fields stay empty options", func(t *testing.T) {
		var request InvocationRequest
		err := json.Unmarshal([]byte(`{"payload":"hello"}`), &request)
		require.NoError(t, err)

		assert.True(t, request.Payload.IsPresent())
		assert.False(t, request.ResponseURL.IsPresent())
		assert.False(t, request.Auth.IsPresent())
	})

	t.Run("empty string is present", func(t *testing.T) {
		var request InvocationRequest
		err := json.Unmarshal([]byte(`{"payload":"","response_url":""}`), &request)
		require.NoError(t, err)

		assert.Equal(t, mo.Some(""), request.Payload)
		assert.Equal(t, mo.Some(""), request.ResponseURL)
	})

	t.Run("wrong type is rejected", func(t *testing.T) {
		var request InvocationRequest
		err := json.Unmarshal([]byte(`{"payload":42}`), &request)
		assert.Error(t, err)
	})
}

func TestInvocationRequest_MarshalJSON(t *testing.T) {
	request := NewInvocationRequest("echo a b", "https://hooks.example.com/1", mo.None[string]())

	data, err := json.Marshal(request)
	require.NoError(t, err)
	assert.JSONEq(t, `{"payload":"echo a b","response_url":"https://hooks.example.com/1"}`, string(data))
}
