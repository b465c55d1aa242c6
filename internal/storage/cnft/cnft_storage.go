package cnft

import (
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/storage/collection"
	"github.com/coinbase/treenode/internal/utils/fxparams"
)

type (
	Storage interface {
		ChangelogStorage
		LeafStorage
		NFTMetadataStorage
		DecompressedStorage
		TransactionStorage
		CommitStorage
	}

	storageImpl struct {
		ChangelogStorage
		LeafStorage
		NFTMetadataStorage
		DecompressedStorage
		TransactionStorage
		CommitStorage
	}

	Params struct {
		fx.In
		fxparams.Params

		CollectionStorage collection.CollectionStorage `name:"collection"`
	}

	Result struct {
		fx.Out
		ChangelogStorage    ChangelogStorage
		LeafStorage         LeafStorage
		NFTMetadataStorage  NFTMetadataStorage
		DecompressedStorage DecompressedStorage
		TransactionStorage  TransactionStorage
		CommitStorage       CommitStorage
		Storage             Storage
	}
)

func New(params Params) (Result, error) {
	changelogStorage, err := newChangelogStorage(params)
	if err != nil {
		return Result{}, xerrors.Errorf("failed to create changelog storage: %w", err)
	}

	leafStorage, err := newLeafStorage(params)
	if err != nil {
		return Result{}, xerrors.Errorf("failed to create leaf storage: %w", err)
	}

	nftMetadataStorage, err := newNFTMetadataStorage(params)
	if err != nil {
		return Result{}, xerrors.Errorf("failed to create nft metadata storage: %w", err)
	}

	decompressedStorage, err := newDecompressedStorage(params)
	if err != nil {
		return Result{}, xerrors.Errorf("failed to create decompressed storage: %w", err)
	}

	transactionStorage, err := newTransactionStorage(params)
	if err != nil {
		return Result{}, xerrors.Errorf("failed to create transaction storage: %w", err)
	}

	commitStorage, err := newCommitStorage(params)
	if err != nil {
		return Result{}, xerrors.Errorf("failed to create commit storage: %w", err)
	}

	storage := &storageImpl{
		ChangelogStorage:    changelogStorage,
		LeafStorage:         leafStorage,
		NFTMetadataStorage:  nftMetadataStorage,
		DecompressedStorage: decompressedStorage,
		TransactionStorage:  transactionStorage,
		CommitStorage:       commitStorage,
	}
	return Result{
		ChangelogStorage:    storage.ChangelogStorage,
		LeafStorage:         storage.LeafStorage,
		NFTMetadataStorage:  storage.NFTMetadataStorage,
		DecompressedStorage: storage.DecompressedStorage,
		TransactionStorage:  storage.TransactionStorage,
		CommitStorage:       storage.CommitStorage,
		Storage:             storage,
	}, nil
}
