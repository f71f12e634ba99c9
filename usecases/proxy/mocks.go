package proxy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wskproxy/models"
)

// MockProxyUseCase is a mock implementation of usecases.ProxyUseCaseInterface
type MockProxyUseCase struct {
	mock.Mock
}

func (m *MockProxyUseCase) Run(ctx context.Context, request models.InvocationRequest) models.OutcomeRecord {
	args := m.Called(ctx, request)
	return args.Get(0).(models.OutcomeRecord)
}
