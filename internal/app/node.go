package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/esb/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/esb/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/esb/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/esb/internal/adapters/symfony"   //nolint:depguard // Wired in app layer
	"go.trai.ch/esb/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/esb/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/esb/internal/adapters/worker"    //nolint:depguard // Wired in app layer
	"go.trai.ch/esb/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			worker.NodeID,
			symfony.NodeID,
			fs.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.ConfigResolver](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.WorkerLauncher](ctx)
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

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, launcher, console, files, w, tracer, log), nil
}
