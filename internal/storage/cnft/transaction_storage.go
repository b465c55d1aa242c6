package cnft

import (
	"context"
	"reflect"

	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/cnft/models"
	"github.com/coinbase/treenode/internal/storage/collection"
)

type (
	TransactionStorage interface {
		PersistIndexedTransaction(ctx context.Context, transaction *cnft.IndexedTransaction) error
		GetIndexedTransaction(ctx context.Context, tag uint32, txID string) (*cnft.IndexedTransaction, error)
	}

	transactionStorageImpl struct {
		collectionStorage collection.CollectionStorage
	}
)

var _ TransactionStorage = (*transactionStorageImpl)(nil)

func newTransactionStorage(params Params) (TransactionStorage, error) {
	return &transactionStorageImpl{
		collectionStorage: params.CollectionStorage.WithCollection(api.CollectionTransactions),
	}, nil
}

func (s *transactionStorageImpl) PersistIndexedTransaction(ctx context.Context, transaction *cnft.IndexedTransaction) error {
	if transaction == nil {
		return xerrors.Errorf("transaction cannot be nil")
	}

	entry, err := models.MakeIndexedTransactionDDBEntry(transaction)
	if err != nil {
		return xerrors.Errorf("failed to make indexed transaction ddb entry: %w", err)
	}

	if err := s.collectionStorage.WriteItem(ctx, entry); err != nil {
		return xerrors.Errorf("failed to write indexed transaction: %w", err)
	}

	return nil
}

func (s *transactionStorageImpl) GetIndexedTransaction(ctx context.Context, tag uint32, txID string) (*cnft.IndexedTransaction, error) {
	outputItem, err := s.collectionStorage.GetItem(ctx, &collection.GetItemRequest{
		KeyMap: collection.StringMap{
			"pk": models.MakeIndexedTransactionPartitionKey(tag, txID),
			"sk": models.MakeIndexedTransactionSortKey(),
		},
		EntryType: reflect.TypeOf(models.IndexedTransactionDDBEntry{}),
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to get indexed transaction: %w", err)
	}

	entry, ok := outputItem.(*models.IndexedTransactionDDBEntry)
	if !ok {
		return nil, xerrors.Errorf("failed to convert output=%v to IndexedTransactionDDBEntry", outputItem)
	}

	var transaction cnft.IndexedTransaction
	if err := entry.AsAPI(&transaction); err != nil {
		return nil, xerrors.Errorf("failed to convert from IndexedTransactionDDBEntry: %w", err)
	}

	return &transaction, nil
}
