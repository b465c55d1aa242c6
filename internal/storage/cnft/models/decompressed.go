package models

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/collection"
	"github.com/coinbase/treenode/internal/utils/reflectutil"
)

// DecompressedDDBEntry marks an asset as decompressed, keyed by (tag, assetId).
type DecompressedDDBEntry struct {
	*collection.BaseItem

	TxID string `dynamodbav:"tx_id"`
	Slot uint64 `dynamodbav:"slot"`
}

const decompressedSortKey = "latest"

var _ collection.Item = (*DecompressedDDBEntry)(nil)

func MakeDecompressedDDBEntry(d *cnft.Decompressed) (*DecompressedDDBEntry, error) {
	entry := &DecompressedDDBEntry{
		BaseItem: collection.NewBaseItem(
			MakeDecompressedPartitionKey(d.Tag, d.AssetID),
			MakeDecompressedSortKey(),
			d.Tag,
		),
		TxID: d.TxID,
		Slot: d.Slot,
	}
	return entry, nil
}

func MakeDecompressedPartitionKey(tag uint32, assetID string) string {
	return fmt.Sprintf("%d#decompressed#%s", tag, assetID)
}

func MakeDecompressedSortKey() string {
	return decompressedSortKey
}

func (e *DecompressedDDBEntry) AsAPI(value interface{}) error {
	updatedAt, err := e.ParseTimestamp(e.UpdatedAt, true)
	if err != nil {
		return xerrors.Errorf("unexpected UpdatedAt in entry: %w", err)
	}

	assetID, err := parsePartitionKeyID(e.PartitionKey)
	if err != nil {
		return xerrors.Errorf("unexpected PartitionKey in entry: %w", err)
	}

	err = reflectutil.Populate(value, &cnft.Decompressed{
		Tag:       e.Tag,
		AssetID:   assetID,
		TxID:      e.TxID,
		Slot:      e.Slot,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return xerrors.Errorf("failed to populate the value: %w", err)
	}

	return nil
}
