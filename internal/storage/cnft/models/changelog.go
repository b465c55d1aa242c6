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

// ChangelogDDBEntry stores one merkle-tree changelog, keyed by (tag, treeId)
// with the tree sequence number as the sort key. The path nodes are gzipped
// into the data attribute.
type ChangelogDDBEntry struct {
	*collection.BaseItem

	TreeID string `dynamodbav:"tree_id"`
	TxID   string `dynamodbav:"tx_id"`
	Slot   uint64 `dynamodbav:"slot"`
	Index  uint32 `dynamodbav:"index"`
}

var _ collection.Item = (*ChangelogDDBEntry)(nil)

func MakeChangelogDDBEntry(c *cnft.Changelog) (*ChangelogDDBEntry, error) {
	path, err := json.Marshal(c.Path)
	if err != nil {
		return nil, xerrors.Errorf("failed to marshal path: %w", err)
	}

	data, err := compression.Compress(path, compression.CompressionGzip)
	if err != nil {
		return nil, xerrors.Errorf("failed to compress the data: %w", err)
	}

	entry := &ChangelogDDBEntry{
		BaseItem: collection.NewBaseItem(
			MakeChangelogPartitionKey(c.Tag, c.TreeID),
			MakeChangelogSortKey(c.Seq),
			c.Tag,
		).WithData(data),
		TreeID: c.TreeID,
		TxID:   c.TxID,
		Slot:   c.Slot,
		Index:  c.Index,
	}
	return entry, nil
}

func MakeChangelogPartitionKey(tag uint32, treeID string) string {
	return fmt.Sprintf("%d#changelogs#%s", tag, treeID)
}

func MakeChangelogSortKey(seq api.Sequence) string {
	return seq.AsPaddedHex()
}

func (e *ChangelogDDBEntry) MakeObjectKey() (string, error) {
	seq, err := e.getSequence()
	if err != nil {
		return "", xerrors.Errorf("failed to make object key: %w", err)
	}

	return fmt.Sprintf("%d/changelogs/%s/%s", e.Tag, e.TreeID, seq.AsDecimal()), nil
}

func (e *ChangelogDDBEntry) AsAPI(value interface{}) error {
	seq, err := e.getSequence()
	if err != nil {
		return xerrors.Errorf("failed to parse sequence from ChangelogDDBEntry: %w", err)
	}

	data, err := compression.Decompress(e.Data, compression.CompressionGzip)
	if err != nil {
		return xerrors.Errorf("failed to decompress data from ChangelogDDBEntry: %w", err)
	}

	var path []cnft.PathNode
	if err := json.Unmarshal(data, &path); err != nil {
		return xerrors.Errorf("failed to unmarshal path: %w", err)
	}

	updatedAt, err := e.ParseTimestamp(e.UpdatedAt, true)
	if err != nil {
		return xerrors.Errorf("unexpected UpdatedAt in entry: %w", err)
	}

	err = reflectutil.Populate(value, &cnft.Changelog{
		Tag:       e.Tag,
		TreeID:    e.TreeID,
		Seq:       seq,
		TxID:      e.TxID,
		Slot:      e.Slot,
		Index:     e.Index,
		Path:      path,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return xerrors.Errorf("failed to populate the value: %w", err)
	}

	return nil
}

func (e *ChangelogDDBEntry) getSequence() (api.Sequence, error) {
	return api.ParsePaddedHexSequence(e.SortKey)
}
