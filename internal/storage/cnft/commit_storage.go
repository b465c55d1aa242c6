package cnft

import (
	"context"

	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/cnft/models"
	"github.com/coinbase/treenode/internal/storage/collection"
)

type (
	// MutationSet aggregates the writes produced by one transaction.
	MutationSet struct {
		Changelogs   []*cnft.Changelog
		Leaves       []*cnft.Leaf
		Metadata     []*cnft.NFTMetadata
		Decompressed []*cnft.Decompressed
		Transaction  *cnft.IndexedTransaction
	}

	CommitStorage interface {
		// CommitMutations writes all mutations of one transaction in a single
		// dynamodb transaction. Either all rows become visible or none do.
		CommitMutations(ctx context.Context, mutations *MutationSet) error
	}

	commitStorageImpl struct {
		changelogCollection   collection.CollectionStorage
		metadataCollection    collection.CollectionStorage
		transactionCollection collection.CollectionStorage
	}
)

var _ CommitStorage = (*commitStorageImpl)(nil)

func newCommitStorage(params Params) (CommitStorage, error) {
	return &commitStorageImpl{
		changelogCollection:   params.CollectionStorage.WithCollection(api.CollectionChangelogs),
		metadataCollection:    params.CollectionStorage.WithCollection(api.CollectionNFTMetadata),
		transactionCollection: params.CollectionStorage.WithCollection(api.CollectionTransactions),
	}, nil
}

// Size returns the number of rows the mutation set writes.
func (m *MutationSet) Size() int {
	size := len(m.Changelogs) + len(m.Leaves) + len(m.Metadata) + len(m.Decompressed)
	if m.Transaction != nil {
		size += 1
	}
	return size
}

func (s *commitStorageImpl) CommitMutations(ctx context.Context, mutations *MutationSet) error {
	if mutations == nil {
		return xerrors.Errorf("mutations cannot be nil")
	}

	transactItems := make([]*collection.TransactItem, 0, mutations.Size())

	for _, changelog := range mutations.Changelogs {
		entry, err := models.MakeChangelogDDBEntry(changelog)
		if err != nil {
			return xerrors.Errorf("failed to make changelog ddb entry: %w", err)
		}

		if err := s.changelogCollection.UploadToBlobStorage(ctx, entry, false); err != nil {
			return xerrors.Errorf("failed to upload changelog data: %w", err)
		}

		transactItems = append(transactItems, &collection.TransactItem{
			Put: &collection.TransactPutItem{Item: entry},
		})
	}

	for _, leaf := range mutations.Leaves {
		entry, err := models.MakeLeafDDBEntry(leaf)
		if err != nil {
			return xerrors.Errorf("failed to make leaf ddb entry: %w", err)
		}

		transactItems = append(transactItems, &collection.TransactItem{
			Put: &collection.TransactPutItem{Item: entry},
		})
	}

	for _, metadata := range mutations.Metadata {
		entry, err := models.MakeNFTMetadataDDBEntry(metadata)
		if err != nil {
			return xerrors.Errorf("failed to make nft metadata ddb entry: %w", err)
		}

		if err := s.metadataCollection.UploadToBlobStorage(ctx, entry, false); err != nil {
			return xerrors.Errorf("failed to upload nft metadata data: %w", err)
		}

		transactItems = append(transactItems, &collection.TransactItem{
			Put: &collection.TransactPutItem{Item: entry},
		})
	}

	for _, decompressed := range mutations.Decompressed {
		entry, err := models.MakeDecompressedDDBEntry(decompressed)
		if err != nil {
			return xerrors.Errorf("failed to make decompressed ddb entry: %w", err)
		}

		transactItems = append(transactItems, &collection.TransactItem{
			Put: &collection.TransactPutItem{Item: entry},
		})
	}

	if mutations.Transaction != nil {
		entry, err := models.MakeIndexedTransactionDDBEntry(mutations.Transaction)
		if err != nil {
			return xerrors.Errorf("failed to make indexed transaction ddb entry: %w", err)
		}

		transactItems = append(transactItems, &collection.TransactItem{
			Put: &collection.TransactPutItem{Item: entry},
		})
	}

	if len(transactItems) == 0 {
		return nil
	}

	if err := s.transactionCollection.TransactWriteItems(ctx, &collection.TransactWriteItemsRequest{
		TransactItems: transactItems,
	}); err != nil {
		return xerrors.Errorf("failed to commit mutations: %w", err)
	}

	return nil
}
