package indexer

import (
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/decoder"
	"github.com/coinbase/treenode/internal/parser"
	storage "github.com/coinbase/treenode/internal/storage/cnft"
)

type (
	// handler turns one classified invocation into buffered row writes.
	// Per-instruction anomalies (missing events, unknown schema versions,
	// out-of-window sequences) are logged and counted, never propagated;
	// sibling instructions in the same transaction still process.
	handler struct {
		logger  *zap.Logger
		tag     uint32
		schema  *decoder.Schema
		metrics *handlerMetrics
	}

	handlerMetrics struct {
		instructionsIndexed tally.Counter
		instructionsSkipped tally.Counter
		instructionsVoided  tally.Counter
	}

	// domainEvents is the typed view of one invocation's own data lines.
	domainEvents struct {
		leafSchemas    []*cnft.LeafSchemaEvent
		newLeaves      []*cnft.NewLeafEvent
		decompressions []*cnft.DecompressionEvent
		total          int
	}
)

func newHandler(logger *zap.Logger, scope tally.Scope, tag uint32, registry decoder.Registry) (*handler, error) {
	tokenProgramID := registry.ProgramID(decoder.RoleToken)
	schema, ok := registry.SchemaFor(tokenProgramID)
	if !ok {
		return nil, xerrors.Errorf("no schema registered for token program %v", tokenProgramID)
	}

	scope = scope.SubScope("handler")
	return &handler{
		logger: logger,
		tag:    tag,
		schema: schema,
		metrics: &handlerMetrics{
			instructionsIndexed: scope.Counter("instructions_indexed"),
			instructionsSkipped: scope.Counter("instructions_skipped"),
			instructionsVoided:  scope.Counter("instructions_voided"),
		},
	}, nil
}

// Handle appends the writes of one invocation to the transaction's mutation
// set. Changelog-consuming kinds pull their event from the extractor in log
// order; administrative kinds consume nothing and write nothing.
func (h *handler) Handle(
	invocation Invocation,
	changelogs *changelogExtractor,
	transaction *api.Transaction,
	mutations *storage.MutationSet,
) {
	logger := h.logger.With(
		zap.String("instruction", invocation.Kind.String()),
		zap.String("tx_id", transaction.TxID),
	)

	if invocation.Kind.IsAdministrative() {
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	if invocation.Kind == KindDecompress {
		h.handleDecompress(logger, invocation, transaction, mutations)
		return
	}

	changelog, ok := changelogs.Next()
	if !ok || changelog == nil {
		logger.Warn("instruction without changelog event, voiding mutation")
		h.metrics.instructionsVoided.Inc(1)
		return
	}

	seq := api.Sequence(changelog.Seq)
	if transaction.Window.Skip(seq) {
		logger.Debug("sequence outside window", zap.Uint64("seq", changelog.Seq))
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	events, err := h.decodeDomainEvents(invocation.Node)
	if err != nil {
		logger.Warn("failed to decode domain events", zap.Error(err))
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	switch invocation.Kind {
	case KindCreateTree:
		h.handleCreateTree(logger, changelog, transaction, mutations)
	case KindMint:
		h.handleMint(logger, changelog, events, transaction, mutations)
	case KindTransfer, KindDelegate, KindBurn, KindRedeem, KindCancelRedeem:
		h.handleLeafUpdate(logger, invocation.Kind, changelog, events, transaction, mutations)
	}
}

func (h *handler) handleCreateTree(
	logger *zap.Logger,
	changelog *cnft.ChangeLogEvent,
	transaction *api.Transaction,
	mutations *storage.MutationSet,
) {
	mutations.Changelogs = append(mutations.Changelogs, h.makeChangelog(changelog, transaction))
	h.metrics.instructionsIndexed.Inc(1)
}

func (h *handler) handleMint(
	logger *zap.Logger,
	changelog *cnft.ChangeLogEvent,
	events *domainEvents,
	transaction *api.Transaction,
	mutations *storage.MutationSet,
) {
	if events.total != 2 || len(events.newLeaves) != 1 || len(events.leafSchemas) != 1 {
		logger.Warn(
			"unexpected event count for mint",
			zap.Int("total", events.total),
			zap.Int("new_leaves", len(events.newLeaves)),
			zap.Int("leaf_schemas", len(events.leafSchemas)),
		)
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	schema, err := events.leafSchemas[0].V1Schema()
	if err != nil {
		logger.Error("failed to read leaf schema", zap.Error(err))
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	seq := api.Sequence(changelog.Seq)
	mutations.Changelogs = append(mutations.Changelogs, h.makeChangelog(changelog, transaction))
	mutations.Leaves = append(mutations.Leaves, h.makeLeaf(schema, changelog, transaction, false))
	mutations.Metadata = append(mutations.Metadata, &cnft.NFTMetadata{
		Tag:      h.tag,
		AssetID:  schema.ID.String(),
		Metadata: events.newLeaves[0].Metadata,
		Seq:      seq,
		TxID:     transaction.TxID,
		Slot:     transaction.Slot,
	})
	h.metrics.instructionsIndexed.Inc(1)
}

func (h *handler) handleLeafUpdate(
	logger *zap.Logger,
	kind Kind,
	changelog *cnft.ChangeLogEvent,
	events *domainEvents,
	transaction *api.Transaction,
	mutations *storage.MutationSet,
) {
	if events.total != 1 || len(events.leafSchemas) != 1 {
		logger.Warn(
			"unexpected event count for leaf update",
			zap.Int("total", events.total),
			zap.Int("leaf_schemas", len(events.leafSchemas)),
		)
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	schema, err := events.leafSchemas[0].V1Schema()
	if err != nil {
		logger.Error("failed to read leaf schema", zap.Error(err))
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	redeemed := kind == KindRedeem
	mutations.Changelogs = append(mutations.Changelogs, h.makeChangelog(changelog, transaction))
	mutations.Leaves = append(mutations.Leaves, h.makeLeaf(schema, changelog, transaction, redeemed))
	h.metrics.instructionsIndexed.Inc(1)
}

func (h *handler) handleDecompress(
	logger *zap.Logger,
	invocation Invocation,
	transaction *api.Transaction,
	mutations *storage.MutationSet,
) {
	events, err := h.decodeDomainEvents(invocation.Node)
	if err != nil {
		logger.Warn("failed to decode domain events", zap.Error(err))
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	if events.total != 1 || len(events.decompressions) != 1 {
		logger.Warn(
			"unexpected event count for decompress",
			zap.Int("total", events.total),
			zap.Int("decompressions", len(events.decompressions)),
		)
		h.metrics.instructionsSkipped.Inc(1)
		return
	}

	mutations.Decompressed = append(mutations.Decompressed, &cnft.Decompressed{
		Tag:     h.tag,
		AssetID: events.decompressions[0].ID.String(),
		TxID:    transaction.TxID,
		Slot:    transaction.Slot,
	})
	h.metrics.instructionsIndexed.Inc(1)
}

// decodeDomainEvents decodes the data lines the token program logged in the
// invocation's own frame. Nested frames belong to other programs and are the
// changelog extractor's concern.
func (h *handler) decodeDomainEvents(node *parser.Node) (*domainEvents, error) {
	events := &domainEvents{}
	for _, child := range node.Children {
		if child.Token == nil || child.Token.Kind != parser.TokenData {
			continue
		}

		event, err := h.schema.Decode(child.Token.Payload)
		if err != nil {
			return nil, xerrors.Errorf("failed to decode data line: %w", err)
		}

		if event == nil {
			continue
		}

		events.total += 1
		switch data := event.Data.(type) {
		case *cnft.LeafSchemaEvent:
			events.leafSchemas = append(events.leafSchemas, data)
		case *cnft.NewLeafEvent:
			events.newLeaves = append(events.newLeaves, data)
		case *cnft.DecompressionEvent:
			events.decompressions = append(events.decompressions, data)
		}
	}

	return events, nil
}

func (h *handler) makeChangelog(event *cnft.ChangeLogEvent, transaction *api.Transaction) *cnft.Changelog {
	return &cnft.Changelog{
		Tag:    h.tag,
		TreeID: event.ID.String(),
		Seq:    api.Sequence(event.Seq),
		TxID:   transaction.TxID,
		Slot:   transaction.Slot,
		Index:  event.Index,
		Path:   event.Path,
	}
}

func (h *handler) makeLeaf(
	schema *cnft.LeafSchemaV1,
	event *cnft.ChangeLogEvent,
	transaction *api.Transaction,
	redeemed bool,
) *cnft.Leaf {
	return &cnft.Leaf{
		Tag:         h.tag,
		AssetID:     schema.ID.String(),
		TreeID:      event.ID.String(),
		Owner:       schema.Owner.String(),
		Delegate:    schema.Delegate.String(),
		Nonce:       schema.Nonce,
		DataHash:    schema.DataHash,
		CreatorHash: schema.CreatorHash,
		Redeemed:    redeemed,
		Compressed:  true,
		Seq:         api.Sequence(event.Seq),
		TxID:        transaction.TxID,
		Slot:        transaction.Slot,
	}
}
