package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/indexer"
	"github.com/coinbase/treenode/internal/worker"
)

var (
	indexFlags struct {
		feed       string
		txID       string
		bestEffort bool
	}

	indexCommand = NewCommand("index", func() error {
		var deps struct {
			fx.In
			Indexer indexer.Indexer
		}

		app, err := NewApp(fx.Populate(&deps))
		if err != nil {
			return xerrors.Errorf("failed to create command: %w", err)
		}
		defer app.Close()

		feed, err := worker.NewFileFeed(indexFlags.feed)
		if err != nil {
			return xerrors.Errorf("failed to open feed: %w", err)
		}
		defer feed.Close()

		if !app.Confirm(fmt.Sprintf("Are you sure you want to index transactions from %v?", indexFlags.feed)) {
			return nil
		}

		ctx := context.Background()
		for {
			transaction, err := feed.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return xerrors.Errorf("failed to read feed: %w", err)
			}

			if indexFlags.txID != "" && transaction.TxID != indexFlags.txID {
				continue
			}

			status, err := indexTransaction(ctx, deps.Indexer, transaction)
			if err != nil {
				return xerrors.Errorf("failed to index transaction %v: %w", transaction.TxID, err)
			}

			app.Logger.Info(
				"indexed transaction",
				zap.String("tx_id", transaction.TxID),
				zap.Uint64("slot", transaction.Slot),
				zap.String("status", status.String()),
			)
		}

		return nil
	})
)

func indexTransaction(ctx context.Context, idx indexer.Indexer, transaction *api.Transaction) (api.Status, error) {
	if indexFlags.bestEffort {
		return idx.IndexTransactionBestEffort(ctx, transaction)
	}

	return idx.IndexTransaction(ctx, transaction)
}

func init() {
	rootCommand.AddCommand(indexCommand)
	indexCommand.StringVar(&indexFlags.feed, "feed", "", true)
	indexCommand.StringVar(&indexFlags.txID, "tx-id", "", false)
	indexCommand.BoolVar(&indexFlags.bestEffort, "best-effort", false, false)
}
