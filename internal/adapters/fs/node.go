package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/esb/internal/core/ports"
)

// NodeID is the unique identifier for the file sync Graft node.
const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[ports.FileSync]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSync, error) {
			return NewSync(), nil
		},
	})
}
