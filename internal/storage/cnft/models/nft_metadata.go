package models

import (
	"encoding/json"
	"fmt"

	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/collection"
	"github.com/coinbase/treenode/internal/utils/compression"
	"github.com/coinbase/treenode/internal/utils/reflectutil"
)

// NFTMetadataDDBEntry stores the creation metadata of one asset. Metadata can
// carry arbitrarily long URIs and creator lists, so the payload is gzipped and
// offloaded to blob storage when oversized.
type NFTMetadataDDBEntry struct {
	*collection.BaseItem

	Seq  string `dynamodbav:"seq"`
	TxID string `dynamodbav:"tx_id"`
	Slot uint64 `dynamodbav:"slot"`
}

const nftMetadataSortKey = "latest"

var _ collection.Item = (*NFTMetadataDDBEntry)(nil)

func MakeNFTMetadataDDBEntry(m *cnft.NFTMetadata) (*NFTMetadataDDBEntry, error) {
	metadata, err := json.Marshal(m.Metadata)
	if err != nil {
		return nil, xerrors.Errorf("failed to marshal metadata: %w", err)
	}

	data, err := compression.Compress(metadata, compression.CompressionGzip)
	if err != nil {
		return nil, xerrors.Errorf("failed to compress the data: %w", err)
	}

	entry := &NFTMetadataDDBEntry{
		BaseItem: collection.NewBaseItem(
			MakeNFTMetadataPartitionKey(m.Tag, m.AssetID),
			MakeNFTMetadataSortKey(),
			m.Tag,
		).WithData(data),
		Seq:  m.Seq.AsPaddedHex(),
		TxID: m.TxID,
		Slot: m.Slot,
	}
	return entry, nil
}

func MakeNFTMetadataPartitionKey(tag uint32, assetID string) string {
	return fmt.Sprintf("%d#nft-metadata#%s", tag, assetID)
}

func MakeNFTMetadataSortKey() string {
	return nftMetadataSortKey
}

func (e *NFTMetadataDDBEntry) MakeObjectKey() (string, error) {
	assetID, err := parsePartitionKeyID(e.PartitionKey)
	if err != nil {
		return "", xerrors.Errorf("failed to make object key: %w", err)
	}

	return fmt.Sprintf("%d/nft-metadata/%s", e.Tag, assetID), nil
}

func (e *NFTMetadataDDBEntry) AsAPI(value interface{}) error {
	seq, err := api.ParsePaddedHexSequence(e.Seq)
	if err != nil {
		return xerrors.Errorf("failed to parse sequence from NFTMetadataDDBEntry: %w", err)
	}

	data, err := compression.Decompress(e.Data, compression.CompressionGzip)
	if err != nil {
		return xerrors.Errorf("failed to decompress data from NFTMetadataDDBEntry: %w", err)
	}

	var metadata cnft.MetadataArgs
	if err := json.Unmarshal(data, &metadata); err != nil {
		return xerrors.Errorf("failed to unmarshal metadata: %w", err)
	}

	updatedAt, err := e.ParseTimestamp(e.UpdatedAt, true)
	if err != nil {
		return xerrors.Errorf("unexpected UpdatedAt in entry: %w", err)
	}

	assetID, err := parsePartitionKeyID(e.PartitionKey)
	if err != nil {
		return xerrors.Errorf("unexpected PartitionKey in entry: %w", err)
	}

	err = reflectutil.Populate(value, &cnft.NFTMetadata{
		Tag:       e.Tag,
		AssetID:   assetID,
		Metadata:  metadata,
		Seq:       seq,
		TxID:      e.TxID,
		Slot:      e.Slot,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return xerrors.Errorf("failed to populate the value: %w", err)
	}

	return nil
}
