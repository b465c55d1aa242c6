package cnft

import (
	"github.com/near/borsh-go"
	"golang.org/x/xerrors"
)

type (
	// ChangeLogEvent is the proof-path snapshot emitted by the tree program on
	// every mutation. Path is ordered from leaf to root; Path[0] is the leaf hash.
	ChangeLogEvent struct {
		ID    Pubkey
		Path  []PathNode
		Seq   uint64
		Index uint32
	}

	PathNode struct {
		Node  [32]byte
		Index uint32
	}

	// Version of the leaf schema. New variants must be appended, never reordered.
	Version borsh.Enum

	// LeafSchema is the versioned, content-addressed descriptor of a
	// compressed asset. Only the V1 variant exists today.
	LeafSchema struct {
		Enum borsh.Enum `borsh_enum:"true"`
		V1   LeafSchemaV1
	}

	LeafSchemaV1 struct {
		ID          Pubkey
		Owner       Pubkey
		Delegate    Pubkey
		Nonce       uint64
		DataHash    [32]byte
		CreatorHash [32]byte
	}

	// LeafSchemaEvent is emitted by the token program whenever a leaf is
	// written or rewritten.
	LeafSchemaEvent struct {
		Version Version
		Schema  LeafSchema
	}

	// NewLeafEvent is emitted only on creation instructions and carries the
	// full metadata of the minted asset.
	NewLeafEvent struct {
		Version  Version
		Metadata MetadataArgs
		Nonce    uint64
	}

	// DecompressionEvent is emitted when a compressed asset is decompressed
	// into a standalone token account.
	DecompressionEvent struct {
		ID Pubkey
	}
)

const (
	VersionV1 Version = 0

	leafSchemaVariantV1 = 0
)

// Event names as emitted by the programs; the 8-byte payload discriminator is
// derived from these.
const (
	EventNameChangeLog     = "ChangeLogEvent"
	EventNameLeafSchema    = "LeafSchemaEvent"
	EventNameNewLeaf       = "NewNFTEvent"
	EventNameDecompression = "DecompressionEvent"
)

var ErrUnknownSchemaVersion = xerrors.New("unknown leaf schema version")

func (v Version) String() string {
	switch v {
	case VersionV1:
		return "v1"
	default:
		return "unknown"
	}
}

// V1Schema returns the event's v1 leaf schema, or ErrUnknownSchemaVersion for
// any schema version this indexer does not understand.
func (e *LeafSchemaEvent) V1Schema() (*LeafSchemaV1, error) {
	if e.Version != VersionV1 || e.Schema.Enum != leafSchemaVariantV1 {
		return nil, xerrors.Errorf("version=%v, variant=%v: %w", e.Version, e.Schema.Enum, ErrUnknownSchemaVersion)
	}

	return &e.Schema.V1, nil
}

// LeafHash returns the leaf node hash of the change log path.
func (e *ChangeLogEvent) LeafHash() ([32]byte, error) {
	if len(e.Path) == 0 {
		return [32]byte{}, xerrors.Errorf("change log event for tree %v has an empty path", e.ID)
	}

	return e.Path[0].Node, nil
}
