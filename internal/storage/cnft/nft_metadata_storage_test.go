package cnft

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/storage/cnft/models"
	"github.com/coinbase/treenode/internal/storage/collection"
	cmocks "github.com/coinbase/treenode/internal/storage/collection/mocks"
	"github.com/coinbase/treenode/internal/utils/testapp"
	"github.com/coinbase/treenode/internal/utils/testutil"
)

type NFTMetadataStorageTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	collectionStorage *cmocks.MockCollectionStorage
	storage           NFTMetadataStorage
	app               testapp.TestApp
}

func TestNFTMetadataStorageTestSuite(t *testing.T) {
	suite.Run(t, new(NFTMetadataStorageTestSuite))
}

func (s *NFTMetadataStorageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.collectionStorage = cmocks.NewMockCollectionStorage(s.ctrl)
	s.collectionStorage.EXPECT().
		WithCollection(api.CollectionNFTMetadata).
		Return(s.collectionStorage)

	s.app = testapp.New(
		s.T(),
		fx.Provide(newNFTMetadataStorage),
		fx.Provide(fx.Annotated{Name: "collection", Target: func() collection.CollectionStorage { return s.collectionStorage }}),
		fx.Populate(&s.storage),
	)
}

func (s *NFTMetadataStorageTestSuite) TearDownTest() {
	s.app.Close()
	s.ctrl.Finish()
}

func (s *NFTMetadataStorageTestSuite) makeMetadata() *cnft.NFTMetadata {
	return &cnft.NFTMetadata{
		Tag:     leafTagFixture,
		AssetID: leafAssetIDFixture,
		Metadata: cnft.MetadataArgs{
			Name:                 "Degen Ape #3617",
			Symbol:               "DAPE",
			URI:                  "https://arweave.net/8a1JC4mKRjM9zTLZotC2AMZb1a2qt_hWmndUVZj8vIQ",
			SellerFeeBasisPoints: 420,
			PrimarySaleHappened:  true,
			IsMutable:            true,
			Creators: []cnft.Creator{
				{
					Address:  cnft.MustPubkeyFromBase58("7Xi3XGxDzcrHxSe1mqVzyBUBM3r7Ni6XckXYqeaBN2UL"),
					Verified: true,
					Share:    100,
				},
			},
		},
		Seq:  api.Sequence(18),
		TxID: changelogTxIDFixture,
		Slot: changelogSlotFixture,
	}
}

func (s *NFTMetadataStorageTestSuite) TestPersistNFTMetadata() {
	require := testutil.Require(s.T())

	ctx := context.Background()
	metadata := s.makeMetadata()

	s.collectionStorage.EXPECT().
		UploadToBlobStorage(gomock.Any(), gomock.Any(), false).Return(nil)
	s.collectionStorage.EXPECT().WriteItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx2 context.Context, entry interface{}) error {
			actualEntry, ok := entry.(*models.NFTMetadataDDBEntry)
			require.True(ok)
			require.Equal("1#nft-metadata#"+leafAssetIDFixture, actualEntry.PartitionKey)
			require.Equal("latest", actualEntry.SortKey)
			require.Equal("0000000000000012", actualEntry.Seq)
			require.NotEmpty(actualEntry.Data)
			return nil
		})

	err := s.storage.PersistNFTMetadata(ctx, metadata)
	require.NoError(err)
}

func (s *NFTMetadataStorageTestSuite) TestGetNFTMetadata() {
	require := testutil.Require(s.T())

	ctx := context.Background()
	metadata := s.makeMetadata()

	entry, err := models.MakeNFTMetadataDDBEntry(metadata)
	require.NoError(err)

	s.collectionStorage.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(entry, nil)

	actual, err := s.storage.GetNFTMetadata(ctx, leafTagFixture, leafAssetIDFixture)
	require.NoError(err)

	metadata.UpdatedAt = testutil.MustTime(entry.UpdatedAt)
	require.Equal(metadata, actual)
}

func (s *NFTMetadataStorageTestSuite) TestGetNFTMetadata_LargeFile() {
	require := testutil.Require(s.T())

	ctx := context.Background()
	metadata := s.makeMetadata()

	entry, err := models.MakeNFTMetadataDDBEntry(metadata)
	require.NoError(err)

	compressed := entry.Data
	objectKey, err := entry.MakeObjectKey()
	require.NoError(err)
	require.Equal("1/nft-metadata/"+leafAssetIDFixture, objectKey)
	require.NoError(entry.SetData(nil))
	require.NoError(entry.SetObjectKey(objectKey))

	s.collectionStorage.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(entry, nil)
	s.collectionStorage.EXPECT().
		DownloadFromBlobStorage(gomock.Any(), entry).
		DoAndReturn(func(ctx context.Context, item collection.Item) error {
			return item.SetData(compressed)
		})

	actual, err := s.storage.GetNFTMetadata(ctx, leafTagFixture, leafAssetIDFixture)
	require.NoError(err)

	metadata.UpdatedAt = testutil.MustTime(entry.UpdatedAt)
	require.Equal(metadata, actual)
}
