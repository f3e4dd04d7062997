package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mru/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/mru/internal/adapters/identity" //nolint:depguard // Wired in app layer
	"go.trai.ch/mru/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mru/internal/core/ports"
	"go.trai.ch/mru/internal/engine/manager"
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
			manager.NodeID,
			identity.NormalizersNodeID,
			identity.LivenessNodeID,
			fs.SnapshotStoreNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	m, err := graft.Dep[*manager.Manager](ctx)
	if err != nil {
		return nil, err
	}

	normalizers, err := graft.Dep[ports.Normalizers](ctx)
	if err != nil {
		return nil, err
	}

	liveness, err := graft.Dep[ports.LivenessChecker](ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(m, normalizers, liveness, snapshots, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
