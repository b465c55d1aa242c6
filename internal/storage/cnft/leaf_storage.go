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
	LeafStorage interface {
		PersistLeaf(ctx context.Context, leaf *cnft.Leaf) error
		// GetLeaf gets the latest leaf schema of the given asset.
		GetLeaf(ctx context.Context, tag uint32, assetID string) (*cnft.Leaf, error)
	}

	leafStorageImpl struct {
		collectionStorage collection.CollectionStorage
	}
)

var _ LeafStorage = (*leafStorageImpl)(nil)

func newLeafStorage(params Params) (LeafStorage, error) {
	return &leafStorageImpl{
		collectionStorage: params.CollectionStorage.WithCollection(api.CollectionLeafSchemas),
	}, nil
}

func (s *leafStorageImpl) PersistLeaf(ctx context.Context, leaf *cnft.Leaf) error {
	if leaf == nil {
		return xerrors.Errorf("leaf cannot be nil")
	}

	entry, err := models.MakeLeafDDBEntry(leaf)
	if err != nil {
		return xerrors.Errorf("failed to make leaf ddb entry: %w", err)
	}

	if err := s.collectionStorage.WriteItem(ctx, entry); err != nil {
		return xerrors.Errorf("failed to write leaf: %w", err)
	}

	return nil
}

func (s *leafStorageImpl) GetLeaf(ctx context.Context, tag uint32, assetID string) (*cnft.Leaf, error) {
	outputItem, err := s.collectionStorage.GetItem(ctx, &collection.GetItemRequest{
		KeyMap: collection.StringMap{
			"pk": models.MakeLeafPartitionKey(tag, assetID),
			"sk": models.MakeLeafSortKey(),
		},
		EntryType: reflect.TypeOf(models.LeafDDBEntry{}),
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to get leaf: %w", err)
	}

	entry, ok := outputItem.(*models.LeafDDBEntry)
	if !ok {
		return nil, xerrors.Errorf("failed to convert output=%v to LeafDDBEntry", outputItem)
	}

	var leaf cnft.Leaf
	if err := entry.AsAPI(&leaf); err != nil {
		return nil, xerrors.Errorf("failed to convert from LeafDDBEntry: %w", err)
	}

	return &leaf, nil
}
