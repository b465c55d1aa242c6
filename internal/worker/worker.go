package worker

import (
	"context"
	"io"
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/config"
	"github.com/coinbase/treenode/internal/indexer"
	"github.com/coinbase/treenode/internal/utils/fxparams"
	"github.com/coinbase/treenode/internal/utils/log"
	"github.com/coinbase/treenode/internal/utils/retry"
	"github.com/coinbase/treenode/internal/utils/syncgroup"
	"github.com/coinbase/treenode/internal/utils/taskpool"
)

type (
	// Worker drains transaction feeds through the indexer. Each feed is one
	// shard whose transactions arrive in commitment order; feeds run
	// concurrently while transactions within a feed apply strictly in order.
	Worker interface {
		// Run drains the given feeds and returns once all are exhausted.
		Run(ctx context.Context, feeds []Feed) error

		// RunBestEffort drains the given feeds through the non-atomic
		// pipeline, fanning transactions out to the task pool. Ordering and
		// atomicity are not preserved.
		RunBestEffort(ctx context.Context, feeds []Feed) error
	}

	WorkerParams struct {
		fx.In
		fxparams.Params
		Indexer  indexer.Indexer
		TaskPool taskpool.TaskPool
	}

	workerImpl struct {
		logger   *zap.Logger
		config   *config.Config
		indexer  indexer.Indexer
		taskPool taskpool.TaskPool
		retry    retry.Retry
		metrics  *workerMetrics
	}

	workerMetrics struct {
		scope tally.Scope
	}
)

const (
	statusTag = "status"

	transactionsCounter = "transactions"
)

func NewWorker(params WorkerParams) (Worker, error) {
	logger := log.WithPackage(params.Logger)
	return &workerImpl{
		logger:   logger,
		config:   params.Config,
		indexer:  params.Indexer,
		taskPool: params.TaskPool,
		retry:    retry.New(retry.WithLogger(logger)),
		metrics: &workerMetrics{
			scope: params.Metrics.SubScope("worker"),
		},
	}, nil
}

func (w *workerImpl) Run(ctx context.Context, feeds []Feed) error {
	group, ctx := syncgroup.New(ctx, syncgroup.WithThrottling(w.config.Worker.Parallelism))
	for _, feed := range feeds {
		feed := feed
		group.Go(func() error {
			return w.drainFeed(ctx, feed)
		})
	}

	return group.Wait()
}

func (w *workerImpl) RunBestEffort(ctx context.Context, feeds []Feed) error {
	for _, feed := range feeds {
		for {
			transaction, err := feed.Next()
			if err != nil {
				if xerrors.Is(err, io.EOF) {
					break
				}

				return xerrors.Errorf("failed to read transaction: %w", err)
			}

			if err := w.taskPool.Submit("index_transaction_best_effort", func(ctx context.Context) error {
				status, err := w.indexer.IndexTransactionBestEffort(ctx, transaction)
				w.recordStatus(status)
				return err
			}); err != nil {
				if xerrors.Is(err, taskpool.ErrFull) {
					// Backpressure: fall back to indexing inline.
					status, err := w.indexer.IndexTransactionBestEffort(ctx, transaction)
					w.recordStatus(status)
					if err != nil {
						w.logger.Warn(
							"failed to index transaction",
							zap.String("tx_id", transaction.TxID),
							zap.Error(err),
						)
					}
					continue
				}

				return xerrors.Errorf("failed to submit transaction: %w", err)
			}
		}
	}

	return nil
}

// drainFeed applies one shard's transactions strictly in order. Transient
// indexing failures retry with backoff; the batch boundary spaces out bursts
// and gives progress logging a natural cadence.
func (w *workerImpl) drainFeed(ctx context.Context, feed Feed) error {
	batchSize := w.config.Worker.BatchSize
	backoff := w.config.Worker.Backoff

	var processed int
	for {
		drained, err := w.drainBatch(ctx, feed, batchSize)
		processed += drained
		if err != nil {
			return err
		}

		if drained < batchSize {
			w.logger.Info("feed drained", zap.Int("transactions", processed))
			return nil
		}

		w.logger.Info("batch indexed", zap.Int("transactions", processed))
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (w *workerImpl) drainBatch(ctx context.Context, feed Feed, batchSize int) (int, error) {
	for drained := 0; drained < batchSize; drained++ {
		select {
		case <-ctx.Done():
			return drained, ctx.Err()
		default:
		}

		transaction, err := feed.Next()
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				return drained, nil
			}

			return drained, xerrors.Errorf("failed to read transaction: %w", err)
		}

		var status api.Status
		if err := w.retry.Retry(ctx, func(ctx context.Context) error {
			result, err := w.indexer.IndexTransaction(ctx, transaction)
			if err != nil {
				return retry.Retryable(err)
			}

			status = result
			return nil
		}); err != nil {
			return drained, xerrors.Errorf("failed to index transaction %v: %w", transaction.TxID, err)
		}

		w.recordStatus(status)
	}

	return batchSize, nil
}

func (w *workerImpl) recordStatus(status api.Status) {
	w.metrics.scope.
		Tagged(map[string]string{statusTag: status.String()}).
		Counter(transactionsCounter).
		Inc(1)
}
