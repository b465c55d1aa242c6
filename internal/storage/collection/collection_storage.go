package collection

import (
	"context"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/config"
	"github.com/coinbase/treenode/internal/storage/blob"
	"github.com/coinbase/treenode/internal/utils/fxparams"
	"github.com/coinbase/treenode/internal/utils/instrument"
)

type (
	CollectionStorageParams struct {
		fx.In
		fxparams.Params
		blob.BlobStorage
		EmptyTable *emptyTableOption `optional:"true"`
		DynamoAPI  DynamoAPI         `optional:"true"`
		Session    *session.Session
	}

	CollectionStorage interface {
		// WithCollection initializes the collection context, which is used for instrumentation.
		// This method must be called before calling other methods.
		WithCollection(collection api.Collection) CollectionStorage

		WriteItem(ctx context.Context, item interface{}) error
		GetItem(ctx context.Context, request *GetItemRequest) (interface{}, error)
		TransactWriteItems(ctx context.Context, request *TransactWriteItemsRequest) error

		// UploadToBlobStorage uploads data to blob storage if the size exceeds the maxDataSize
		// always upload to blob storage if enforceUpload is true
		UploadToBlobStorage(ctx context.Context, entry Item, enforceUpload bool) error

		// DownloadFromBlobStorage downloads data from blob storage if the object key is not empty
		DownloadFromBlobStorage(ctx context.Context, entry Item) error
	}

	collectionStorageImpl struct {
		table       ddbTable
		config      *config.Config
		scope       tally.Scope
		blobStorage blob.BlobStorage
		collection  api.Collection
		metrics     *collectionStorageMetrics
	}

	collectionStorageMetrics struct {
		writeItem               instrument.Call
		transactWriteItems      instrument.Call
		getItem                 instrument.Call
		uploadToBlobStorage     instrument.Call
		downloadFromBlobStorage instrument.Call
	}
)

var _ CollectionStorage = (*collectionStorageImpl)(nil)

func NewCollectionStorage(params CollectionStorageParams) (CollectionStorage, error) {
	collectionTable, err := newDDBTable(params.Config.AWS.DynamoDB.CollectionTable, params)
	if err != nil {
		return nil, xerrors.Errorf("failed to create collection table: %w", err)
	}

	return &collectionStorageImpl{
		table:       collectionTable,
		config:      params.Config,
		scope:       params.Metrics,
		blobStorage: params.BlobStorage,
	}, nil
}

func newCollectionStorageMetrics(scope tally.Scope, collection api.Collection) *collectionStorageMetrics {
	tags := map[string]string{"collection": collection.String()}
	scope = scope.SubScope("storage").SubScope("collection").Tagged(tags)
	return &collectionStorageMetrics{
		writeItem:               instrument.NewCall(scope, "write_item"),
		transactWriteItems:      instrument.NewCall(scope, "transact_write_items"),
		getItem:                 instrument.NewCall(scope, "get_item"),
		uploadToBlobStorage:     instrument.NewCall(scope, "upload_to_blob_storage"),
		downloadFromBlobStorage: instrument.NewCall(scope, "download_from_blob_storage"),
	}
}

func (s *collectionStorageImpl) WithCollection(collection api.Collection) CollectionStorage {
	clone := *s
	clone.collection = collection
	clone.metrics = newCollectionStorageMetrics(s.scope, collection)
	return &clone
}

func (s *collectionStorageImpl) WriteItem(ctx context.Context, item interface{}) error {
	return s.metrics.writeItem.Instrument(ctx, func(ctx context.Context) error {
		return s.table.WriteItem(ctx, item)
	})
}

func (s *collectionStorageImpl) TransactWriteItems(ctx context.Context, request *TransactWriteItemsRequest) error {
	return s.metrics.transactWriteItems.Instrument(ctx, func(ctx context.Context) error {
		return s.table.TransactWriteItems(ctx, request)
	})
}

func (s *collectionStorageImpl) GetItem(ctx context.Context, request *GetItemRequest) (interface{}, error) {
	var res interface{}
	err := s.metrics.getItem.Instrument(ctx, func(ctx context.Context) error {
		v, err := s.table.GetItem(ctx, request)
		if err != nil {
			return err
		}

		res = v
		return nil
	})

	return res, err
}

func (s *collectionStorageImpl) UploadToBlobStorage(ctx context.Context, entry Item, enforceUpload bool) error {
	data, err := entry.GetData()
	if err != nil {
		return xerrors.Errorf("failed to get data from entry: %w", err)
	}

	if !enforceUpload && len(data) < s.config.AWS.DynamoDB.MaxDataSize {
		err := entry.SetObjectKey("")
		if err != nil {
			return xerrors.Errorf("failed to set object key for entry: %w", err)
		}
		return nil
	}

	return s.metrics.uploadToBlobStorage.Instrument(ctx, func(ctx context.Context) error {
		return s.uploadToBlobStorage(ctx, entry, data)
	})
}

func (s *collectionStorageImpl) uploadToBlobStorage(ctx context.Context, entry Item, data []byte) error {
	objectKey, err := entry.MakeObjectKey()
	if err != nil {
		return xerrors.Errorf("failed to make object key for entry: %w", err)
	}

	err = s.blobStorage.Upload(ctx, objectKey, data)
	if err != nil {
		return xerrors.Errorf("failed to upload entry data to s3: %w", err)
	}

	err = entry.SetObjectKey(objectKey)
	if err != nil {
		return xerrors.Errorf("failed to set object key for entry: %w", err)
	}

	err = entry.SetData(nil)
	if err != nil {
		return xerrors.Errorf("failed to set data for entry: %w", err)
	}

	return nil
}

func (s *collectionStorageImpl) DownloadFromBlobStorage(ctx context.Context, entry Item) error {
	return s.metrics.downloadFromBlobStorage.Instrument(ctx, func(ctx context.Context) error {
		return s.downloadFromBlobStorage(ctx, entry)
	})
}

func (s *collectionStorageImpl) downloadFromBlobStorage(ctx context.Context, entry Item) error {
	objectKey, err := entry.GetObjectKey()
	if err != nil {
		return xerrors.Errorf("failed to get object key from entry: %w", err)
	}

	if objectKey == "" {
		return xerrors.Errorf("object key cannot be empty")
	}

	data, err := s.blobStorage.Download(ctx, objectKey)
	if err != nil {
		return xerrors.Errorf("failed to download entry data from s3: %w", err)
	}

	if err := entry.SetData(data); err != nil {
		return xerrors.Errorf("failed to set data for entry: %w", err)
	}

	return nil
}
