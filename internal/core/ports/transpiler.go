package ports

import (
	"context"

	"go.trai.ch/esb/internal/core/domain"
)

// Transpiler sends generation requests to the code generation worker.
//
//go:generate mockgen -source=transpiler.go -destination=mocks/mock_transpiler.go -package=mocks
type Transpiler interface {
	// Call sends the request and waits for the response carrying the same correlation id.
	// Concurrent calls share the worker; responses may arrive in any order.
	Call(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResponse, error)

	// Close shuts the worker down. Pending and later calls fail.
	Close(ctx context.Context) error
}

// WorkerLauncher starts transpiler workers for a project.
type WorkerLauncher interface {
	// Launch starts a worker configured by the options. The caller owns the
	// returned transpiler and must close it.
	Launch(ctx context.Context, opts domain.Options) (Transpiler, error)
}
