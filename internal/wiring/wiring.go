// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/esb/internal/adapters/config"
	_ "go.trai.ch/esb/internal/adapters/fs"
	_ "go.trai.ch/esb/internal/adapters/logger"
	_ "go.trai.ch/esb/internal/adapters/symfony"
	_ "go.trai.ch/esb/internal/adapters/telemetry"
	_ "go.trai.ch/esb/internal/adapters/watcher"
	_ "go.trai.ch/esb/internal/adapters/worker"
	// Register app nodes.
	_ "go.trai.ch/esb/internal/app"
)
