package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/core/ports"
)

// NodeID is the unique identifier for the script writer Graft node.
const NodeID graft.ID = "adapter.script_writer"

func init() {
	graft.Register(graft.Node[ports.ScriptWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ScriptWriter, error) {
			return NewWriter(), nil
		},
	})
}
