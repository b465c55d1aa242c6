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
	NFTMetadataStorage interface {
		PersistNFTMetadata(ctx context.Context, metadata *cnft.NFTMetadata) error
		// GetNFTMetadata gets the creation metadata of the given asset.
		GetNFTMetadata(ctx context.Context, tag uint32, assetID string) (*cnft.NFTMetadata, error)
	}

	nftMetadataStorageImpl struct {
		collectionStorage collection.CollectionStorage
	}
)

var _ NFTMetadataStorage = (*nftMetadataStorageImpl)(nil)

func newNFTMetadataStorage(params Params) (NFTMetadataStorage, error) {
	return &nftMetadataStorageImpl{
		collectionStorage: params.CollectionStorage.WithCollection(api.CollectionNFTMetadata),
	}, nil
}

func (s *nftMetadataStorageImpl) PersistNFTMetadata(ctx context.Context, metadata *cnft.NFTMetadata) error {
	if metadata == nil {
		return xerrors.Errorf("metadata cannot be nil")
	}

	entry, err := models.MakeNFTMetadataDDBEntry(metadata)
	if err != nil {
		return xerrors.Errorf("failed to make nft metadata ddb entry: %w", err)
	}

	if err := s.collectionStorage.UploadToBlobStorage(ctx, entry, false); err != nil {
		return xerrors.Errorf("failed to upload data: %w", err)
	}

	if err := s.collectionStorage.WriteItem(ctx, entry); err != nil {
		return xerrors.Errorf("failed to write nft metadata: %w", err)
	}

	return nil
}

func (s *nftMetadataStorageImpl) GetNFTMetadata(ctx context.Context, tag uint32, assetID string) (*cnft.NFTMetadata, error) {
	outputItem, err := s.collectionStorage.GetItem(ctx, &collection.GetItemRequest{
		KeyMap: collection.StringMap{
			"pk": models.MakeNFTMetadataPartitionKey(tag, assetID),
			"sk": models.MakeNFTMetadataSortKey(),
		},
		EntryType: reflect.TypeOf(models.NFTMetadataDDBEntry{}),
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to get nft metadata: %w", err)
	}

	entry, ok := outputItem.(*models.NFTMetadataDDBEntry)
	if !ok {
		return nil, xerrors.Errorf("failed to convert output=%v to NFTMetadataDDBEntry", outputItem)
	}

	if entry.ObjectKey != "" {
		if err := s.collectionStorage.DownloadFromBlobStorage(ctx, entry); err != nil {
			return nil, xerrors.Errorf("failed to download data based on objectKey: %w", err)
		}
	}

	var metadata cnft.NFTMetadata
	if err := entry.AsAPI(&metadata); err != nil {
		return nil, xerrors.Errorf("failed to convert from NFTMetadataDDBEntry: %w", err)
	}

	return &metadata, nil
}
