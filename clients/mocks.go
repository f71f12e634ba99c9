package clients

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"wskproxy/models"
)

// MockActionInvoker is a mock implementation of ActionInvoker
type MockActionInvoker struct {
	mock.Mock
}

func (m *MockActionInvoker) Invoke(
	ctx context.Context,
	action string,
	parameters map[string]string,
	auth mo.Option[string],
) models.RemoteResult {
	args := m.Called(ctx, action, parameters, auth)
	return args.Get(0).(models.RemoteResult)
}

// MockResponseURLClient is a mock implementation of ResponseURLClient
type MockResponseURLClient struct {
	mock.Mock
}

func (m *MockResponseURLClient) Post(ctx context.Context, responseURL string, message models.RelayMessage) error {
	args := m.Called(ctx, responseURL, message)
	return args.Error(0)
}
