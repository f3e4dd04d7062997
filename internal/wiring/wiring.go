// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mru/internal/adapters/config"
	_ "go.trai.ch/mru/internal/adapters/fs"
	_ "go.trai.ch/mru/internal/adapters/identity"
	_ "go.trai.ch/mru/internal/adapters/lock"
	_ "go.trai.ch/mru/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/mru/internal/app"
	_ "go.trai.ch/mru/internal/engine/manager"
)
