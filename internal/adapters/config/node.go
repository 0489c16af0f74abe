package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/esb/internal/adapters/fs"
	"go.trai.ch/esb/internal/adapters/logger"
	"go.trai.ch/esb/internal/adapters/symfony"
	"go.trai.ch/esb/internal/core/ports"
)

// NodeID is the unique identifier for the config resolver Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, symfony.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			console, err := graft.Dep[ports.Console](ctx)
			if err != nil {
				return nil, err
			}
			files, err := graft.Dep[ports.FileSync](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log, console, files), nil
		},
	})
}
