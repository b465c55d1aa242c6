package cnft

import (
	"time"

	"github.com/coinbase/treenode/internal/api"
)

type (
	// Changelog is the persisted form of a ChangeLogEvent, keyed by (treeId, seq).
	Changelog struct {
		Tag    uint32
		TreeID string
		Seq    api.Sequence
		TxID   string
		Slot   uint64
		Index  uint32
		Path   []PathNode

		UpdatedAt time.Time // set by storage
	}

	// Leaf is the persisted leaf schema of one asset, keyed by asset id.
	Leaf struct {
		Tag         uint32
		AssetID     string
		TreeID      string
		Owner       string
		Delegate    string
		Nonce       uint64
		DataHash    [32]byte
		CreatorHash [32]byte
		Redeemed    bool
		Compressed  bool
		Seq         api.Sequence
		TxID        string
		Slot        uint64

		UpdatedAt time.Time // set by storage
	}

	// Decompressed marks an asset that left the tree via a decompress instruction.
	Decompressed struct {
		Tag     uint32
		AssetID string
		TxID    string
		Slot    uint64

		UpdatedAt time.Time // set by storage
	}

	// IndexedTransaction records the terminal status of one indexed transaction.
	IndexedTransaction struct {
		Tag    uint32
		TxID   string
		Slot   uint64
		Status api.Status

		UpdatedAt time.Time // set by storage
	}

	// NFTMetadata is the persisted creation metadata of one asset.
	NFTMetadata struct {
		Tag      uint32
		AssetID  string
		Metadata MetadataArgs
		Seq      api.Sequence
		TxID     string
		Slot     uint64

		UpdatedAt time.Time // set by storage
	}
)
