package worker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/esb/internal/adapters/logger"
	"go.trai.ch/esb/internal/core/ports"
)

// NodeID is the unique identifier for the worker launcher Graft node.
const NodeID graft.ID = "adapter.worker"

func init() {
	graft.Register(graft.Node[ports.WorkerLauncher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkerLauncher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
