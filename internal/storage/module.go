package storage

import (
	"go.uber.org/fx"

	"github.com/coinbase/treenode/internal/storage/blob"
	"github.com/coinbase/treenode/internal/storage/cnft"
	"github.com/coinbase/treenode/internal/storage/collection"
	"github.com/coinbase/treenode/internal/storage/internal"
	"github.com/coinbase/treenode/internal/storage/s3"
)

type (
	CnftStorage = cnft.Storage
	MutationSet = cnft.MutationSet
)

var (
	Module = fx.Options(
		blob.Module,
		cnft.Module,
		collection.Module,
		s3.Module,
	)

	ErrItemNotFound    = internal.ErrItemNotFound
	ErrRequestCanceled = internal.ErrRequestCanceled
)

func WithEmptyStorage() fx.Option {
	return fx.Options(
		collection.WithEmptyTable(),
		s3.WithEmptyClient(),
	)
}
