package usecases

import (
	"context"

	"wskproxy/models"
)

// ProxyUseCaseInterface defines the single pipeline run exposed to inbound transports
type ProxyUseCaseInterface interface {
	Run(ctx context.Context, request models.InvocationRequest) models.OutcomeRecord
}
