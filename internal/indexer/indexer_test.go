package indexer

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/decoder"
	storage "github.com/coinbase/treenode/internal/storage/cnft"
	storagemocks "github.com/coinbase/treenode/internal/storage/cnft/mocks"
	"github.com/coinbase/treenode/internal/utils/testapp"
	"github.com/coinbase/treenode/internal/utils/testutil"
)

type IndexerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	storage *storagemocks.MockStorage
	indexer Indexer
	app     testapp.TestApp
}

const (
	indexerTagFixture    = uint32(1)
	tokenProgramFixture  = "BGUMzZr2wWfD2yzrXFEWTK2HbdYhqQCP2EZoPEkZBD6o"
	treeProgramFixture   = "GRoLLMza82AiYN7W9S9KCCtCyyPRAQP2ifBy4v4D5RMD"
	indexerTreeFixture   = "GRoLLzvxpxxu2PGNJMMeZPyMxjAUH9pKqxGXV9DGiovh"
	indexerAssetFixture  = "BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDJ8V9krD6z3z"
	indexerOwnerFixture  = "7Xi3XGxDzcrHxSe1mqVzyBUBM3r7Ni6XckXYqeaBN2UL"
	indexerTxIDFixture   = "5j1CZvDSSyvnJsPtRjNo61TGDHUJabJoX9cLkzLW7XkV"
	indexerSlotFixture   = uint64(132903321)
)

func TestIndexerTestSuite(t *testing.T) {
	suite.Run(t, new(IndexerTestSuite))
}

func (s *IndexerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.storage = storagemocks.NewMockStorage(s.ctrl)

	s.app = testapp.New(
		s.T(),
		Module,
		decoder.Module,
		fx.Provide(func() storage.Storage { return s.storage }),
		fx.Populate(&s.indexer),
	)
}

func (s *IndexerTestSuite) TearDownTest() {
	s.app.Close()
	s.ctrl.Finish()
}

func encodePayload(t *testing.T, name string, event interface{}) string {
	require := testutil.Require(t)

	serialized, err := borsh.Serialize(event)
	require.NoError(err)

	discriminator := decoder.Discriminator(name)
	return base64.StdEncoding.EncodeToString(append(discriminator[:], serialized...))
}

func (s *IndexerTestSuite) makeChangelogEvent(seq uint64) cnft.ChangeLogEvent {
	return cnft.ChangeLogEvent{
		ID: cnft.MustPubkeyFromBase58(indexerTreeFixture),
		Path: []cnft.PathNode{
			{Node: [32]byte{0xaa}, Index: 16},
			{Node: [32]byte{0xbb}, Index: 8},
		},
		Seq:   seq,
		Index: 3,
	}
}

func (s *IndexerTestSuite) makeLeafSchemaEvent() cnft.LeafSchemaEvent {
	return cnft.LeafSchemaEvent{
		Version: cnft.VersionV1,
		Schema: cnft.LeafSchema{
			V1: cnft.LeafSchemaV1{
				ID:          cnft.MustPubkeyFromBase58(indexerAssetFixture),
				Owner:       cnft.MustPubkeyFromBase58(indexerOwnerFixture),
				Delegate:    cnft.MustPubkeyFromBase58(indexerOwnerFixture),
				Nonce:       17,
				DataHash:    [32]byte{0x1},
				CreatorHash: [32]byte{0x2},
			},
		},
	}
}

func (s *IndexerTestSuite) makeNewLeafEvent() cnft.NewLeafEvent {
	return cnft.NewLeafEvent{
		Version: cnft.VersionV1,
		Metadata: cnft.MetadataArgs{
			Name:   "Degen Ape #3617",
			Symbol: "DAPE",
			URI:    "https://arweave.net/8a1JC4mKRjM9zTLZotC2AMZb1a2qt_hWmndUVZj8vIQ",
		},
		Nonce: 17,
	}
}

// makeMintLogs builds the log lines of a successful mint: the token program
// logs the new leaf and leaf schema events, then invokes the tree program,
// which logs its changelog.
func (s *IndexerTestSuite) makeMintLogs(seq uint64) []string {
	return []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Mint",
		"Program data: " + encodePayload(s.T(), cnft.EventNameNewLeaf, s.makeNewLeafEvent()),
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, s.makeLeafSchemaEvent()),
		"Program " + treeProgramFixture + " invoke [2]",
		"Program data: " + encodePayload(s.T(), cnft.EventNameChangeLog, s.makeChangelogEvent(seq)),
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " consumed 38241 of 200000 compute units",
		"Program " + tokenProgramFixture + " success",
	}
}

func (s *IndexerTestSuite) makeLeafUpdateLogs(instruction string, seq uint64) []string {
	return []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: " + instruction,
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, s.makeLeafSchemaEvent()),
		"Program " + treeProgramFixture + " invoke [2]",
		"Program data: " + encodePayload(s.T(), cnft.EventNameChangeLog, s.makeChangelogEvent(seq)),
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " success",
	}
}

func (s *IndexerTestSuite) makeTransaction(logs []string) *api.Transaction {
	return &api.Transaction{
		TxID: indexerTxIDFixture,
		Slot: indexerSlotFixture,
		Logs: logs,
	}
}

func (s *IndexerTestSuite) expectedStatusRow(status api.Status) *cnft.IndexedTransaction {
	return &cnft.IndexedTransaction{
		Tag:    indexerTagFixture,
		TxID:   indexerTxIDFixture,
		Slot:   indexerSlotFixture,
		Status: status,
	}
}

func (s *IndexerTestSuite) TestIndexTransaction_Mint() {
	require := testutil.Require(s.T())

	seq := uint64(18)
	transaction := s.makeTransaction(s.makeMintLogs(seq))

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, len(mutations.Changelogs))
			require.Equal(1, len(mutations.Leaves))
			require.Equal(1, len(mutations.Metadata))
			require.Empty(mutations.Decompressed)
			require.Equal(s.expectedStatusRow(api.StatusSuccess), mutations.Transaction)

			changelog := mutations.Changelogs[0]
			require.Equal(indexerTreeFixture, changelog.TreeID)
			require.Equal(api.Sequence(seq), changelog.Seq)
			require.Equal(uint32(3), changelog.Index)
			require.Equal(2, len(changelog.Path))

			leaf := mutations.Leaves[0]
			require.Equal(indexerAssetFixture, leaf.AssetID)
			require.Equal(indexerTreeFixture, leaf.TreeID)
			require.Equal(indexerOwnerFixture, leaf.Owner)
			require.Equal(uint64(17), leaf.Nonce)
			require.False(leaf.Redeemed)
			require.True(leaf.Compressed)

			metadata := mutations.Metadata[0]
			require.Equal(indexerAssetFixture, metadata.AssetID)
			require.Equal("Degen Ape #3617", metadata.Metadata.Name)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_CreateTree() {
	require := testutil.Require(s.T())

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: CreateTree",
		"Program " + treeProgramFixture + " invoke [2]",
		"Program data: " + encodePayload(s.T(), cnft.EventNameChangeLog, s.makeChangelogEvent(0)),
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, len(mutations.Changelogs))
			require.Empty(mutations.Leaves)
			require.Empty(mutations.Metadata)
			require.Equal(api.Sequence(0), mutations.Changelogs[0].Seq)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_Transfer() {
	require := testutil.Require(s.T())

	transaction := s.makeTransaction(s.makeLeafUpdateLogs("Transfer", 19))

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, len(mutations.Changelogs))
			require.Equal(1, len(mutations.Leaves))
			require.Empty(mutations.Metadata)
			require.False(mutations.Leaves[0].Redeemed)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_Redeem() {
	require := testutil.Require(s.T())

	transaction := s.makeTransaction(s.makeLeafUpdateLogs("Redeem", 20))

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, len(mutations.Leaves))
			require.True(mutations.Leaves[0].Redeemed)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_Decompress() {
	require := testutil.Require(s.T())

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Decompress",
		"Program data: " + encodePayload(s.T(), cnft.EventNameDecompression, cnft.DecompressionEvent{
			ID: cnft.MustPubkeyFromBase58(indexerAssetFixture),
		}),
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Empty(mutations.Changelogs)
			require.Equal(1, len(mutations.Decompressed))
			require.Equal(indexerAssetFixture, mutations.Decompressed[0].AssetID)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_NestedCPI() {
	require := testutil.Require(s.T())

	seq := uint64(21)
	logs := []string{
		"Program ComputeBudget111111111111111111111111111111 invoke [1]",
		"Program ComputeBudget111111111111111111111111111111 success",
		"Program CndyV3LdqHUfDLmE5naZjVN8rBZz4tqhdefbAnjHG3JR invoke [1]",
		"Program log: Instruction: MintCompressed",
		"Program " + tokenProgramFixture + " invoke [2]",
		"Program log: Instruction: Mint",
		"Program data: " + encodePayload(s.T(), cnft.EventNameNewLeaf, s.makeNewLeafEvent()),
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, s.makeLeafSchemaEvent()),
		"Program " + treeProgramFixture + " invoke [3]",
		"Program data: " + encodePayload(s.T(), cnft.EventNameChangeLog, s.makeChangelogEvent(seq)),
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " success",
		"Program CndyV3LdqHUfDLmE5naZjVN8rBZz4tqhdefbAnjHG3JR success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, len(mutations.Changelogs))
			require.Equal(1, len(mutations.Leaves))
			require.Equal(1, len(mutations.Metadata))
			require.Equal(api.Sequence(seq), mutations.Changelogs[0].Seq)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_Failed() {
	require := testutil.Require(s.T())

	transaction := s.makeTransaction([]string{"garbage that would never parse ["})
	transaction.Failed = true

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			require.Equal(s.expectedStatusRow(api.StatusTransactionError), mutations.Transaction)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusTransactionError, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_Truncated() {
	require := testutil.Require(s.T())

	logs := append(s.makeMintLogs(22), "Log truncated")
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			require.Equal(s.expectedStatusRow(api.StatusLogTruncated), mutations.Transaction)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusLogTruncated, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_ParseError() {
	require := testutil.Require(s.T())

	logs := []string{
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.Error(err)
	require.Equal(api.StatusUnknown, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_WindowSkip() {
	require := testutil.Require(s.T())

	seq := uint64(18)
	transaction := s.makeTransaction(s.makeMintLogs(seq))
	start := api.Sequence(18)
	transaction.Window.Start = &start

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			require.Equal(s.expectedStatusRow(api.StatusSuccess), mutations.Transaction)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_WindowInside() {
	require := testutil.Require(s.T())

	seq := uint64(18)
	transaction := s.makeTransaction(s.makeMintLogs(seq))
	start := api.Sequence(17)
	end := api.Sequence(19)
	transaction.Window.Start = &start
	transaction.Window.End = &end

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, len(mutations.Changelogs))
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_MintEventMismatch() {
	require := testutil.Require(s.T())

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Mint",
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, s.makeLeafSchemaEvent()),
		"Program " + treeProgramFixture + " invoke [2]",
		"Program data: " + encodePayload(s.T(), cnft.EventNameChangeLog, s.makeChangelogEvent(23)),
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			require.Equal(s.expectedStatusRow(api.StatusSuccess), mutations.Transaction)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_MissingChangelog() {
	require := testutil.Require(s.T())

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Transfer",
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, s.makeLeafSchemaEvent()),
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_MissingChangelogKeepsPairing() {
	require := testutil.Require(s.T())

	first := s.makeLeafSchemaEvent()
	first.Schema.V1.Nonce = 1
	second := s.makeLeafSchemaEvent()
	second.Schema.V1.Nonce = 2

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Transfer",
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, first),
		"Program " + treeProgramFixture + " invoke [2]",
		"Program log: replace_leaf",
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " success",
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Transfer",
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, second),
		"Program " + treeProgramFixture + " invoke [2]",
		"Program data: " + encodePayload(s.T(), cnft.EventNameChangeLog, s.makeChangelogEvent(100)),
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	// The first transfer's tree frame carries no changelog: only that transfer
	// is voided, and the second transfer keeps its own event.
	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, len(mutations.Changelogs))
			require.Equal(api.Sequence(100), mutations.Changelogs[0].Seq)
			require.Equal(1, len(mutations.Leaves))
			require.Equal(uint64(2), mutations.Leaves[0].Nonce)
			require.Equal(api.Sequence(100), mutations.Leaves[0].Seq)
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_PathDepthExceeded() {
	require := testutil.Require(s.T())

	event := s.makeChangelogEvent(27)
	// one node above the configured max_path_depth of 31
	event.Path = make([]cnft.PathNode, 32)

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Transfer",
		"Program data: " + encodePayload(s.T(), cnft.EventNameLeafSchema, s.makeLeafSchemaEvent()),
		"Program " + treeProgramFixture + " invoke [2]",
		"Program data: " + encodePayload(s.T(), cnft.EventNameChangeLog, event),
		"Program " + treeProgramFixture + " success",
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_AdministrativeSkipped() {
	require := testutil.Require(s.T())

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: SetTreeDelegate",
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_UnknownInstruction() {
	require := testutil.Require(s.T())

	logs := []string{
		"Program " + tokenProgramFixture + " invoke [1]",
		"Program log: Instruction: Bogus",
		"Program " + tokenProgramFixture + " success",
	}
	transaction := s.makeTransaction(logs)

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mutations *storage.MutationSet) error {
			require.Equal(1, mutations.Size())
			return nil
		})

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_CommitError() {
	require := testutil.Require(s.T())

	transaction := s.makeTransaction(s.makeMintLogs(24))

	s.storage.EXPECT().CommitMutations(gomock.Any(), gomock.Any()).
		Return(xerrors.Errorf("transaction canceled"))

	status, err := s.indexer.IndexTransaction(context.Background(), transaction)
	require.Error(err)
	require.Equal(api.StatusUnknown, status)
}

func (s *IndexerTestSuite) TestIndexTransaction_Nil() {
	require := testutil.Require(s.T())

	status, err := s.indexer.IndexTransaction(context.Background(), nil)
	require.Error(err)
	require.Equal(api.StatusUnknown, status)
}

func (s *IndexerTestSuite) TestIndexTransactionBestEffort() {
	require := testutil.Require(s.T())

	transaction := s.makeTransaction(s.makeMintLogs(25))

	s.storage.EXPECT().PersistChangelog(gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().PersistLeaf(gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().PersistNFTMetadata(gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().PersistIndexedTransaction(gomock.Any(), s.expectedStatusRow(api.StatusSuccess)).Return(nil)

	status, err := s.indexer.IndexTransactionBestEffort(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}

func (s *IndexerTestSuite) TestIndexTransactionBestEffort_PartialFailure() {
	require := testutil.Require(s.T())

	transaction := s.makeTransaction(s.makeMintLogs(26))

	s.storage.EXPECT().PersistChangelog(gomock.Any(), gomock.Any()).
		Return(xerrors.Errorf("failed to write changelog"))
	s.storage.EXPECT().PersistLeaf(gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().PersistNFTMetadata(gomock.Any(), gomock.Any()).Return(nil)
	s.storage.EXPECT().PersistIndexedTransaction(gomock.Any(), gomock.Any()).Return(nil)

	status, err := s.indexer.IndexTransactionBestEffort(context.Background(), transaction)
	require.NoError(err)
	require.Equal(api.StatusSuccess, status)
}
