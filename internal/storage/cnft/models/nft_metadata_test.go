package models

import (
	"testing"

	"github.com/coinbase/treenode/internal/api"
	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/utils/testutil"
)

func TestNFTMetadata(t *testing.T) {
	require := testutil.Require(t)
	tag := uint32(1)
	assetID := "BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDJ8V9krD6z3z"

	require.Equal("1#nft-metadata#"+assetID, MakeNFTMetadataPartitionKey(tag, assetID))
	require.Equal("latest", MakeNFTMetadataSortKey())

	metadata := &cnft.NFTMetadata{
		Tag:     tag,
		AssetID: assetID,
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
		Seq:  api.Sequence(17),
		TxID: "5j1CZvDSSyvnJsPtRjNo61TGDHUJabJoX9cLkzLW7XkV",
		Slot: 132903321,
	}

	entry, err := MakeNFTMetadataDDBEntry(metadata)
	require.NoError(err)
	require.NotNil(entry)
	testutil.MustTime(entry.UpdatedAt)
	require.NotEmpty(entry.Data)

	objectKey, err := entry.MakeObjectKey()
	require.NoError(err)
	require.Equal("1/nft-metadata/"+assetID, objectKey)

	var actual cnft.NFTMetadata
	err = entry.AsAPI(&actual)
	require.NoError(err)
	require.False(actual.UpdatedAt.IsZero())
	metadata.UpdatedAt = actual.UpdatedAt
	require.Equal(metadata, &actual)
}

func TestIndexedTransaction(t *testing.T) {
	require := testutil.Require(t)
	txID := "5j1CZvDSSyvnJsPtRjNo61TGDHUJabJoX9cLkzLW7XkV"

	require.Equal("1#transactions#"+txID, MakeIndexedTransactionPartitionKey(1, txID))

	transaction := &cnft.IndexedTransaction{
		Tag:    1,
		TxID:   txID,
		Slot:   132903321,
		Status: api.StatusTransactionError,
	}

	entry, err := MakeIndexedTransactionDDBEntry(transaction)
	require.NoError(err)
	require.Equal("transaction_error", entry.Status)

	var actual cnft.IndexedTransaction
	err = entry.AsAPI(&actual)
	require.NoError(err)
	transaction.UpdatedAt = actual.UpdatedAt
	require.Equal(transaction, &actual)

	entry.Status = "bogus"
	err = entry.AsAPI(&actual)
	require.Error(err)
}
