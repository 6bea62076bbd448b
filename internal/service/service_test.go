package service

import (
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

const testSecret = "test-secret"

func newTestService() *DataService {
	return New(simulator.NewStatic(), nil, testSecret, 0, zap.NewNop())
}

func newFailingService() *DataService {
	return New(&simulator.Static{Fail: true}, nil, testSecret, 0, zap.NewNop())
}
