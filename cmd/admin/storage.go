package main

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/storage"
)

var (
	storageCommand = NewCommand("storage", nil)

	storageFlags struct {
		tag      uint32
		treeID   string
		assetID  string
		txID     string
		sequence int64
	}

	changelogGetCommand = NewCommand("changelog", func() error {
		var deps struct {
			fx.In
			Storage storage.CnftStorage
		}

		app, err := NewApp(fx.Populate(&deps))
		if err != nil {
			return xerrors.Errorf("failed to create command: %w", err)
		}
		defer app.Close()

		tag := app.Config.Tag.GetEffectiveTag(storageFlags.tag)
		changelog, err := deps.Storage.GetChangelog(context.Background(), tag, storageFlags.treeID, api.Sequence(storageFlags.sequence))
		if err != nil {
			return xerrors.Errorf("failed to get changelog: %w", err)
		}

		app.Logger.Info("found changelog", zap.Reflect("changelog", changelog))
		return nil
	})

	leafGetCommand = NewCommand("leaf", func() error {
		var deps struct {
			fx.In
			Storage storage.CnftStorage
		}

		app, err := NewApp(fx.Populate(&deps))
		if err != nil {
			return xerrors.Errorf("failed to create command: %w", err)
		}
		defer app.Close()

		tag := app.Config.Tag.GetEffectiveTag(storageFlags.tag)
		leaf, err := deps.Storage.GetLeaf(context.Background(), tag, storageFlags.assetID)
		if err != nil {
			return xerrors.Errorf("failed to get leaf: %w", err)
		}

		app.Logger.Info("found leaf", zap.Reflect("leaf", leaf))
		return nil
	})

	metadataGetCommand = NewCommand("metadata", func() error {
		var deps struct {
			fx.In
			Storage storage.CnftStorage
		}

		app, err := NewApp(fx.Populate(&deps))
		if err != nil {
			return xerrors.Errorf("failed to create command: %w", err)
		}
		defer app.Close()

		tag := app.Config.Tag.GetEffectiveTag(storageFlags.tag)
		metadata, err := deps.Storage.GetNFTMetadata(context.Background(), tag, storageFlags.assetID)
		if err != nil {
			return xerrors.Errorf("failed to get nft metadata: %w", err)
		}

		app.Logger.Info("found nft metadata", zap.Reflect("metadata", metadata))
		return nil
	})

	transactionGetCommand = NewCommand("transaction", func() error {
		var deps struct {
			fx.In
			Storage storage.CnftStorage
		}

		app, err := NewApp(fx.Populate(&deps))
		if err != nil {
			return xerrors.Errorf("failed to create command: %w", err)
		}
		defer app.Close()

		tag := app.Config.Tag.GetEffectiveTag(storageFlags.tag)
		transaction, err := deps.Storage.GetIndexedTransaction(context.Background(), tag, storageFlags.txID)
		if err != nil {
			return xerrors.Errorf("failed to get indexed transaction: %w", err)
		}

		app.Logger.Info("found indexed transaction", zap.Reflect("transaction", transaction))
		return nil
	})
)

func init() {
	rootCommand.AddCommand(storageCommand)
	storageCommand.AddCommand(changelogGetCommand)
	storageCommand.AddCommand(leafGetCommand)
	storageCommand.AddCommand(metadataGetCommand)
	storageCommand.AddCommand(transactionGetCommand)

	storageCommand.Uint32Var(&storageFlags.tag, "tag", 0, false)
	storageCommand.StringVar(&storageFlags.treeID, "tree-id", "", false)
	storageCommand.StringVar(&storageFlags.assetID, "asset-id", "", false)
	storageCommand.StringVar(&storageFlags.txID, "tx-id", "", false)
	storageCommand.Int64Var(&storageFlags.sequence, "sequence", 0, false)
}
