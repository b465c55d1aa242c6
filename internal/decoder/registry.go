package decoder

import (
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/config"
)

type (
	// Role identifies a program by its function rather than its address, so
	// downstream stages never depend on ambient program id state.
	Role int

	// Registry resolves program roles to ids and program ids to their event
	// schemas. Both schema tables are available concurrently.
	Registry interface {
		ProgramID(role Role) string
		SchemaFor(programID string) (*Schema, bool)
	}

	registryImpl struct {
		programIDs map[Role]string
		schemas    map[string]*Schema
	}

	RegistryParams struct {
		fx.In
		Config *config.Config
	}
)

const (
	// RoleTree is the generic merkle-tree program emitting changelog events.
	RoleTree Role = iota
	// RoleToken is the compressed-token program built on the tree program.
	RoleToken
)

var Module = fx.Options(
	fx.Provide(NewRegistry),
)

func NewRegistry(params RegistryParams) (Registry, error) {
	treeProgram := params.Config.Chain.TreeProgram
	tokenProgram := params.Config.Chain.TokenProgram
	if treeProgram == tokenProgram {
		return nil, xerrors.Errorf("tree program and token program must differ (%v)", treeProgram)
	}

	treeSchema := NewSchema().
		Register(cnft.EventNameChangeLog, cnft.ChangeLogEvent{})

	tokenSchema := NewSchema().
		Register(cnft.EventNameLeafSchema, cnft.LeafSchemaEvent{}).
		Register(cnft.EventNameNewLeaf, cnft.NewLeafEvent{}).
		Register(cnft.EventNameDecompression, cnft.DecompressionEvent{})

	return &registryImpl{
		programIDs: map[Role]string{
			RoleTree:  treeProgram,
			RoleToken: tokenProgram,
		},
		schemas: map[string]*Schema{
			treeProgram:  treeSchema,
			tokenProgram: tokenSchema,
		},
	}, nil
}

func (r *registryImpl) ProgramID(role Role) string {
	return r.programIDs[role]
}

func (r *registryImpl) SchemaFor(programID string) (*Schema, bool) {
	schema, ok := r.schemas[programID]
	return schema, ok
}
