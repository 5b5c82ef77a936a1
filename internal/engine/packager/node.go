package packager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crate/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crate/internal/adapters/marker" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crate/internal/adapters/report" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crate/internal/adapters/script" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crate/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "engine.packager"

func init() {
	graft.Register(graft.Node[*Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			marker.NodeID,
			fs.FingerprinterNodeID,
			script.NodeID,
			logger.NodeID,
			report.NodeID,
		},
		Run: func(ctx context.Context) (*Packager, error) {
			markers, err := graft.Dep[ports.MarkerStore](ctx)
			if err != nil {
				return nil, err
			}

			prints, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			scripts, err := graft.Dep[ports.ScriptWriter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return New(markers, prints, scripts, log, reporter), nil
		},
	})
}
