package models

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/collection"
	"github.com/coinbase/treenode/internal/utils/reflectutil"
)

// IndexedTransactionDDBEntry records the terminal status of one transaction,
// keyed by (tag, txId).
type IndexedTransactionDDBEntry struct {
	*collection.BaseItem

	Slot   uint64 `dynamodbav:"slot"`
	Status string `dynamodbav:"status"`
}

const indexedTransactionSortKey = "latest"

var _ collection.Item = (*IndexedTransactionDDBEntry)(nil)

func MakeIndexedTransactionDDBEntry(t *cnft.IndexedTransaction) (*IndexedTransactionDDBEntry, error) {
	entry := &IndexedTransactionDDBEntry{
		BaseItem: collection.NewBaseItem(
			MakeIndexedTransactionPartitionKey(t.Tag, t.TxID),
			MakeIndexedTransactionSortKey(),
			t.Tag,
		),
		Slot:   t.Slot,
		Status: t.Status.String(),
	}
	return entry, nil
}

func MakeIndexedTransactionPartitionKey(tag uint32, txID string) string {
	return fmt.Sprintf("%d#transactions#%s", tag, txID)
}

func MakeIndexedTransactionSortKey() string {
	return indexedTransactionSortKey
}

func (e *IndexedTransactionDDBEntry) AsAPI(value interface{}) error {
	status, err := api.ParseStatus(e.Status)
	if err != nil {
		return xerrors.Errorf("unexpected Status in entry: %w", err)
	}

	updatedAt, err := e.ParseTimestamp(e.UpdatedAt, true)
	if err != nil {
		return xerrors.Errorf("unexpected UpdatedAt in entry: %w", err)
	}

	txID, err := parsePartitionKeyID(e.PartitionKey)
	if err != nil {
		return xerrors.Errorf("unexpected PartitionKey in entry: %w", err)
	}

	err = reflectutil.Populate(value, &cnft.IndexedTransaction{
		Tag:       e.Tag,
		TxID:      txID,
		Slot:      e.Slot,
		Status:    status,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return xerrors.Errorf("failed to populate the value: %w", err)
	}

	return nil
}
