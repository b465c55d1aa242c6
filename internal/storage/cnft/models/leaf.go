package models

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/collection"
	"github.com/coinbase/treenode/internal/utils/reflectutil"
)

// LeafDDBEntry stores the latest leaf schema of one asset, keyed by (tag, assetId).
// A fixed sort key is used so that each write replaces the previous state.
type LeafDDBEntry struct {
	*collection.BaseItem

	TreeID      string `dynamodbav:"tree_id"`
	Owner       string `dynamodbav:"owner"`
	Delegate    string `dynamodbav:"delegate"`
	Nonce       uint64 `dynamodbav:"nonce"`
	DataHash    string `dynamodbav:"data_hash"`
	CreatorHash string `dynamodbav:"creator_hash"`
	Redeemed    bool   `dynamodbav:"redeemed"`
	Compressed  bool   `dynamodbav:"compressed"`
	Seq         string `dynamodbav:"seq"`
	TxID        string `dynamodbav:"tx_id"`
	Slot        uint64 `dynamodbav:"slot"`
}

const leafSortKey = "latest"

var _ collection.Item = (*LeafDDBEntry)(nil)

func MakeLeafDDBEntry(l *cnft.Leaf) (*LeafDDBEntry, error) {
	entry := &LeafDDBEntry{
		BaseItem: collection.NewBaseItem(
			MakeLeafPartitionKey(l.Tag, l.AssetID),
			MakeLeafSortKey(),
			l.Tag,
		),
		TreeID:      l.TreeID,
		Owner:       l.Owner,
		Delegate:    l.Delegate,
		Nonce:       l.Nonce,
		DataHash:    hex.EncodeToString(l.DataHash[:]),
		CreatorHash: hex.EncodeToString(l.CreatorHash[:]),
		Redeemed:    l.Redeemed,
		Compressed:  l.Compressed,
		Seq:         l.Seq.AsPaddedHex(),
		TxID:        l.TxID,
		Slot:        l.Slot,
	}
	return entry, nil
}

func MakeLeafPartitionKey(tag uint32, assetID string) string {
	return fmt.Sprintf("%d#leaf-schemas#%s", tag, assetID)
}

func MakeLeafSortKey() string {
	return leafSortKey
}

func (e *LeafDDBEntry) AsAPI(value interface{}) error {
	seq, err := api.ParsePaddedHexSequence(e.Seq)
	if err != nil {
		return xerrors.Errorf("failed to parse sequence from LeafDDBEntry: %w", err)
	}

	dataHash, err := parseHash(e.DataHash)
	if err != nil {
		return xerrors.Errorf("unexpected DataHash in entry: %w", err)
	}

	creatorHash, err := parseHash(e.CreatorHash)
	if err != nil {
		return xerrors.Errorf("unexpected CreatorHash in entry: %w", err)
	}

	updatedAt, err := e.ParseTimestamp(e.UpdatedAt, true)
	if err != nil {
		return xerrors.Errorf("unexpected UpdatedAt in entry: %w", err)
	}

	assetID, err := parsePartitionKeyID(e.PartitionKey)
	if err != nil {
		return xerrors.Errorf("unexpected PartitionKey in entry: %w", err)
	}

	err = reflectutil.Populate(value, &cnft.Leaf{
		Tag:         e.Tag,
		AssetID:     assetID,
		TreeID:      e.TreeID,
		Owner:       e.Owner,
		Delegate:    e.Delegate,
		Nonce:       e.Nonce,
		DataHash:    dataHash,
		CreatorHash: creatorHash,
		Redeemed:    e.Redeemed,
		Compressed:  e.Compressed,
		Seq:         seq,
		TxID:        e.TxID,
		Slot:        e.Slot,
		UpdatedAt:   updatedAt,
	})
	if err != nil {
		return xerrors.Errorf("failed to populate the value: %w", err)
	}

	return nil
}

func parseHash(value string) ([32]byte, error) {
	var out [32]byte
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return out, xerrors.Errorf("failed to decode hash %v: %w", value, err)
	}
	if len(decoded) != len(out) {
		return out, xerrors.Errorf("unexpected hash length %v", len(decoded))
	}
	copy(out[:], decoded)
	return out, nil
}

func parsePartitionKeyID(partitionKey string) (string, error) {
	parts := strings.SplitN(partitionKey, "#", 3)
	if len(parts) != 3 || parts[2] == "" {
		return "", xerrors.Errorf("malformed partition key %v", partitionKey)
	}
	return parts[2], nil
}
