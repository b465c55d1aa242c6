package cnft

import (
	"context"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/cnft/models"
	"github.com/coinbase/treenode/internal/storage/collection"
	cmocks "github.com/coinbase/treenode/internal/storage/collection/mocks"
	storageinternal "github.com/coinbase/treenode/internal/storage/internal"
	"github.com/coinbase/treenode/internal/utils/testapp"
	"github.com/coinbase/treenode/internal/utils/testutil"
)

type LeafStorageTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	collectionStorage *cmocks.MockCollectionStorage
	storage           LeafStorage
	app               testapp.TestApp
}

const (
	leafTagFixture          = uint32(1)
	leafAssetIDFixture      = "BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDJ8V9krD6z3z"
	leafPartitionKeyFixture = "1#leaf-schemas#BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDJ8V9krD6z3z"
)

func TestLeafStorageTestSuite(t *testing.T) {
	suite.Run(t, new(LeafStorageTestSuite))
}

func (s *LeafStorageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.collectionStorage = cmocks.NewMockCollectionStorage(s.ctrl)
	s.collectionStorage.EXPECT().
		WithCollection(api.CollectionLeafSchemas).
		Return(s.collectionStorage)

	s.app = testapp.New(
		s.T(),
		fx.Provide(newLeafStorage),
		fx.Provide(fx.Annotated{Name: "collection", Target: func() collection.CollectionStorage { return s.collectionStorage }}),
		fx.Populate(&s.storage),
	)
}

func (s *LeafStorageTestSuite) TearDownTest() {
	s.app.Close()
	s.ctrl.Finish()
}

func (s *LeafStorageTestSuite) makeLeaf() *cnft.Leaf {
	return &cnft.Leaf{
		Tag:         leafTagFixture,
		AssetID:     leafAssetIDFixture,
		TreeID:      changelogTreeIDFixture,
		Owner:       "7Xi3XGxDzcrHxSe1mqVzyBUBM3r7Ni6XckXYqeaBN2UL",
		Delegate:    "7Xi3XGxDzcrHxSe1mqVzyBUBM3r7Ni6XckXYqeaBN2UL",
		Nonce:       18,
		DataHash:    [32]byte{0xaa, 0xbb},
		CreatorHash: [32]byte{0xcc, 0xdd},
		Redeemed:    false,
		Compressed:  true,
		Seq:         api.Sequence(18),
		TxID:        changelogTxIDFixture,
		Slot:        changelogSlotFixture,
	}
}

func (s *LeafStorageTestSuite) TestPersistLeaf() {
	require := testutil.Require(s.T())

	ctx := context.Background()
	leaf := s.makeLeaf()

	expectedEntry := &models.LeafDDBEntry{
		BaseItem: collection.NewBaseItem(
			leafPartitionKeyFixture,
			"latest",
			leafTagFixture,
		),
		TreeID:      leaf.TreeID,
		Owner:       leaf.Owner,
		Delegate:    leaf.Delegate,
		Nonce:       18,
		DataHash:    "aabb000000000000000000000000000000000000000000000000000000000000",
		CreatorHash: "ccdd000000000000000000000000000000000000000000000000000000000000",
		Redeemed:    false,
		Compressed:  true,
		Seq:         "0000000000000012",
		TxID:        leaf.TxID,
		Slot:        leaf.Slot,
	}

	s.collectionStorage.EXPECT().WriteItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx2 context.Context, entry interface{}) error {
			actualEntry, ok := entry.(*models.LeafDDBEntry)
			require.True(ok)
			testutil.MustTime(actualEntry.UpdatedAt)
			expectedEntry.UpdatedAt = actualEntry.UpdatedAt
			require.Equal(expectedEntry, actualEntry)
			return nil
		})

	err := s.storage.PersistLeaf(ctx, leaf)
	require.NoError(err)
}

func (s *LeafStorageTestSuite) TestPersistLeaf_Nil() {
	require := testutil.Require(s.T())

	err := s.storage.PersistLeaf(context.Background(), nil)
	require.Error(err)
}

func (s *LeafStorageTestSuite) TestGetLeaf() {
	require := testutil.Require(s.T())

	ctx := context.Background()
	leaf := s.makeLeaf()

	entry, err := models.MakeLeafDDBEntry(leaf)
	require.NoError(err)

	s.collectionStorage.EXPECT().GetItem(gomock.Any(), &collection.GetItemRequest{
		KeyMap: collection.StringMap{
			"pk": leafPartitionKeyFixture,
			"sk": "latest",
		},
		EntryType: reflect.TypeOf(models.LeafDDBEntry{}),
	}).Return(entry, nil)

	actual, err := s.storage.GetLeaf(ctx, leafTagFixture, leafAssetIDFixture)
	require.NoError(err)

	leaf.UpdatedAt = testutil.MustTime(entry.UpdatedAt)
	require.Equal(leaf, actual)
}

func (s *LeafStorageTestSuite) TestGetLeaf_NotFound() {
	require := testutil.Require(s.T())

	s.collectionStorage.EXPECT().GetItem(gomock.Any(), gomock.Any()).
		Return(nil, xerrors.Errorf("item not found: %w", storageinternal.ErrItemNotFound))

	actual, err := s.storage.GetLeaf(context.Background(), leafTagFixture, leafAssetIDFixture)
	require.Error(err)
	require.True(xerrors.Is(err, storageinternal.ErrItemNotFound))
	require.Nil(actual)
}
