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
	DecompressedStorage interface {
		PersistDecompressed(ctx context.Context, decompressed *cnft.Decompressed) error
		// GetDecompressed returns storage.ErrItemNotFound if the asset was never decompressed.
		GetDecompressed(ctx context.Context, tag uint32, assetID string) (*cnft.Decompressed, error)
	}

	decompressedStorageImpl struct {
		collectionStorage collection.CollectionStorage
	}
)

var _ DecompressedStorage = (*decompressedStorageImpl)(nil)

func newDecompressedStorage(params Params) (DecompressedStorage, error) {
	return &decompressedStorageImpl{
		collectionStorage: params.CollectionStorage.WithCollection(api.CollectionDecompressed),
	}, nil
}

func (s *decompressedStorageImpl) PersistDecompressed(ctx context.Context, decompressed *cnft.Decompressed) error {
	if decompressed == nil {
		return xerrors.Errorf("decompressed cannot be nil")
	}

	entry, err := models.MakeDecompressedDDBEntry(decompressed)
	if err != nil {
		return xerrors.Errorf("failed to make decompressed ddb entry: %w", err)
	}

	if err := s.collectionStorage.WriteItem(ctx, entry); err != nil {
		return xerrors.Errorf("failed to write decompressed: %w", err)
	}

	return nil
}

func (s *decompressedStorageImpl) GetDecompressed(ctx context.Context, tag uint32, assetID string) (*cnft.Decompressed, error) {
	outputItem, err := s.collectionStorage.GetItem(ctx, &collection.GetItemRequest{
		KeyMap: collection.StringMap{
			"pk": models.MakeDecompressedPartitionKey(tag, assetID),
			"sk": models.MakeDecompressedSortKey(),
		},
		EntryType: reflect.TypeOf(models.DecompressedDDBEntry{}),
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to get decompressed: %w", err)
	}

	entry, ok := outputItem.(*models.DecompressedDDBEntry)
	if !ok {
		return nil, xerrors.Errorf("failed to convert output=%v to DecompressedDDBEntry", outputItem)
	}

	var decompressed cnft.Decompressed
	if err := entry.AsAPI(&decompressed); err != nil {
		return nil, xerrors.Errorf("failed to convert from DecompressedDDBEntry: %w", err)
	}

	return &decompressed, nil
}
