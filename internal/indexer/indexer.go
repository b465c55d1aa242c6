package indexer

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/decoder"
	"github.com/coinbase/treenode/internal/parser"
	storage "github.com/coinbase/treenode/internal/storage/cnft"
	"github.com/coinbase/treenode/internal/utils/fxparams"
	"github.com/coinbase/treenode/internal/utils/instrument"
	"github.com/coinbase/treenode/internal/utils/log"
)

type (
	// Indexer turns one transaction's captured log lines into persisted rows.
	Indexer interface {
		// IndexTransaction applies all of the transaction's writes atomically:
		// either every mutation lands or none do. A structural parse error or
		// a commit failure is returned as an error with StatusUnknown; all
		// other outcomes map onto the returned status.
		IndexTransaction(ctx context.Context, transaction *api.Transaction) (api.Status, error)

		// IndexTransactionBestEffort runs the same pipeline but applies each
		// mutation individually. Row-level failures are logged and skipped,
		// trading atomicity for progress. Intended for streaming use.
		IndexTransactionBestEffort(ctx context.Context, transaction *api.Transaction) (api.Status, error)
	}

	IndexerParams struct {
		fx.In
		fxparams.Params
		Registry decoder.Registry
		Storage  storage.Storage
	}

	indexerImpl struct {
		logger       *zap.Logger
		tag          uint32
		maxPathDepth int
		registry     decoder.Registry
		storage      storage.Storage
		handler      *handler
		dispatcher   *dispatcher

		instrumentIndex           instrument.Call
		instrumentIndexBestEffort instrument.Call
	}
)

var _ Indexer = (*indexerImpl)(nil)

func NewIndexer(params IndexerParams) (Indexer, error) {
	logger := log.WithPackage(params.Logger)
	tag := params.Config.Tag.GetEffectiveTag(0)
	scope := params.Metrics.SubScope("indexer")

	h, err := newHandler(logger, scope, tag, params.Registry)
	if err != nil {
		return nil, xerrors.Errorf("failed to create handler: %w", err)
	}

	return &indexerImpl{
		logger:                    logger,
		tag:                       tag,
		maxPathDepth:              params.Config.Indexer.MaxPathDepth,
		registry:                  params.Registry,
		storage:                   params.Storage,
		handler:                   h,
		dispatcher:                newDispatcher(logger, params.Registry),
		instrumentIndex:           instrument.NewCall(scope, "index_transaction"),
		instrumentIndexBestEffort: instrument.NewCall(scope, "index_transaction_best_effort"),
	}, nil
}

func (i *indexerImpl) IndexTransaction(ctx context.Context, transaction *api.Transaction) (api.Status, error) {
	var status api.Status
	err := i.instrumentIndex.Instrument(ctx, func(ctx context.Context) error {
		mutations, terminal, err := i.processTransaction(transaction)
		if err != nil {
			return err
		}

		status = terminal
		if err := i.storage.CommitMutations(ctx, mutations); err != nil {
			status = api.StatusUnknown
			return xerrors.Errorf("failed to commit mutations for transaction %v: %w", transaction.TxID, err)
		}

		return nil
	})
	if err != nil {
		return api.StatusUnknown, err
	}

	return status, nil
}

func (i *indexerImpl) IndexTransactionBestEffort(ctx context.Context, transaction *api.Transaction) (api.Status, error) {
	var status api.Status
	err := i.instrumentIndexBestEffort.Instrument(ctx, func(ctx context.Context) error {
		mutations, terminal, err := i.processTransaction(transaction)
		if err != nil {
			return err
		}

		status = terminal
		i.applyBestEffort(ctx, transaction, mutations)
		return nil
	})
	if err != nil {
		return api.StatusUnknown, err
	}

	return status, nil
}

// processTransaction runs the parse/dispatch/handle pipeline and buffers the
// resulting writes. The failed flag and the truncation marker are checked
// before any structural decision is trusted; either aborts with a terminal
// status and a mutation set holding only the transaction's status row.
func (i *indexerImpl) processTransaction(transaction *api.Transaction) (*storage.MutationSet, api.Status, error) {
	if transaction == nil {
		return nil, api.StatusUnknown, xerrors.Errorf("transaction cannot be nil")
	}

	if transaction.Failed {
		return i.terminalMutations(transaction, api.StatusTransactionError), api.StatusTransactionError, nil
	}

	nodes, err := parser.Parse(transaction.Logs)
	if err != nil {
		if xerrors.Is(err, api.ErrLogTruncated) {
			return i.terminalMutations(transaction, api.StatusLogTruncated), api.StatusLogTruncated, nil
		}

		return nil, api.StatusUnknown, xerrors.Errorf("failed to parse logs of transaction %v: %w", transaction.TxID, err)
	}

	invocations := i.dispatcher.Dispatch(nodes)
	mutations := i.terminalMutations(transaction, api.StatusSuccess)
	if len(invocations) == 0 {
		return mutations, api.StatusSuccess, nil
	}

	changelogs, err := newChangelogExtractor(i.logger, i.registry, i.maxPathDepth, nodes)
	if err != nil {
		return nil, api.StatusUnknown, xerrors.Errorf("failed to extract changelogs of transaction %v: %w", transaction.TxID, err)
	}

	for _, invocation := range invocations {
		i.handler.Handle(invocation, changelogs, transaction, mutations)
	}

	if remaining := changelogs.Remaining(); remaining > 0 {
		i.logger.Warn(
			"unconsumed changelog events",
			zap.String("tx_id", transaction.TxID),
			zap.Int("remaining", remaining),
		)
	}

	return mutations, api.StatusSuccess, nil
}

func (i *indexerImpl) terminalMutations(transaction *api.Transaction, status api.Status) *storage.MutationSet {
	return &storage.MutationSet{
		Transaction: &cnft.IndexedTransaction{
			Tag:    i.tag,
			TxID:   transaction.TxID,
			Slot:   transaction.Slot,
			Status: status,
		},
	}
}

func (i *indexerImpl) applyBestEffort(ctx context.Context, transaction *api.Transaction, mutations *storage.MutationSet) {
	logger := i.logger.With(zap.String("tx_id", transaction.TxID))

	for _, changelog := range mutations.Changelogs {
		if err := i.storage.PersistChangelog(ctx, changelog); err != nil {
			logger.Warn("failed to persist changelog", zap.Error(err))
		}
	}

	for _, leaf := range mutations.Leaves {
		if err := i.storage.PersistLeaf(ctx, leaf); err != nil {
			logger.Warn("failed to persist leaf", zap.Error(err))
		}
	}

	for _, metadata := range mutations.Metadata {
		if err := i.storage.PersistNFTMetadata(ctx, metadata); err != nil {
			logger.Warn("failed to persist nft metadata", zap.Error(err))
		}
	}

	for _, decompressed := range mutations.Decompressed {
		if err := i.storage.PersistDecompressed(ctx, decompressed); err != nil {
			logger.Warn("failed to persist decompressed", zap.Error(err))
		}
	}

	if mutations.Transaction != nil {
		if err := i.storage.PersistIndexedTransaction(ctx, mutations.Transaction); err != nil {
			logger.Warn("failed to persist indexed transaction", zap.Error(err))
		}
	}
}
