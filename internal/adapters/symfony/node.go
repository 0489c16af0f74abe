package symfony

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/esb/internal/adapters/logger"
	"go.trai.ch/esb/internal/core/ports"
)

// NodeID is the unique identifier for the Symfony console Graft node.
const NodeID graft.ID = "adapter.symfony"

func init() {
	graft.Register(graft.Node[ports.Console]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Console, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConsole(log), nil
		},
	})
}
