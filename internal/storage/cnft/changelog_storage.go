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
	ChangelogStorage interface {
		PersistChangelog(ctx context.Context, changelog *cnft.Changelog) error
		// GetChangelog gets the changelog of the given tree at the given tree sequence number.
		GetChangelog(ctx context.Context, tag uint32, treeID string, seq api.Sequence) (*cnft.Changelog, error)
	}

	changelogStorageImpl struct {
		collectionStorage collection.CollectionStorage
	}
)

var _ ChangelogStorage = (*changelogStorageImpl)(nil)

func newChangelogStorage(params Params) (ChangelogStorage, error) {
	return &changelogStorageImpl{
		collectionStorage: params.CollectionStorage.WithCollection(api.CollectionChangelogs),
	}, nil
}

func (s *changelogStorageImpl) PersistChangelog(ctx context.Context, changelog *cnft.Changelog) error {
	if changelog == nil {
		return xerrors.Errorf("changelog cannot be nil")
	}

	entry, err := models.MakeChangelogDDBEntry(changelog)
	if err != nil {
		return xerrors.Errorf("failed to make changelog ddb entry: %w", err)
	}

	if err := s.collectionStorage.UploadToBlobStorage(ctx, entry, false); err != nil {
		return xerrors.Errorf("failed to upload data: %w", err)
	}

	if err := s.collectionStorage.WriteItem(ctx, entry); err != nil {
		return xerrors.Errorf("failed to write changelog: %w", err)
	}

	return nil
}

func (s *changelogStorageImpl) GetChangelog(ctx context.Context, tag uint32, treeID string, seq api.Sequence) (*cnft.Changelog, error) {
	outputItem, err := s.collectionStorage.GetItem(ctx, &collection.GetItemRequest{
		KeyMap: collection.StringMap{
			"pk": models.MakeChangelogPartitionKey(tag, treeID),
			"sk": models.MakeChangelogSortKey(seq),
		},
		EntryType: reflect.TypeOf(models.ChangelogDDBEntry{}),
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to get changelog: %w", err)
	}

	entry, ok := outputItem.(*models.ChangelogDDBEntry)
	if !ok {
		return nil, xerrors.Errorf("failed to convert output=%v to ChangelogDDBEntry", outputItem)
	}

	if entry.ObjectKey != "" {
		if err := s.collectionStorage.DownloadFromBlobStorage(ctx, entry); err != nil {
			return nil, xerrors.Errorf("failed to download data based on objectKey: %w", err)
		}
	}

	var changelog cnft.Changelog
	if err := entry.AsAPI(&changelog); err != nil {
		return nil, xerrors.Errorf("failed to convert from ChangelogDDBEntry: %w", err)
	}

	return &changelog, nil
}
