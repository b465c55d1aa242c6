package decoder

import (
	"encoding/base64"
	"testing"

	"github.com/near/borsh-go"

	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/utils/testutil"
)

func encodeEvent(t *testing.T, name string, event interface{}) string {
	require := testutil.Require(t)

	serialized, err := borsh.Serialize(event)
	require.NoError(err)

	discriminator := Discriminator(name)
	payload := append(discriminator[:], serialized...)
	return base64.StdEncoding.EncodeToString(payload)
}

func TestDiscriminator(t *testing.T) {
	require := testutil.Require(t)

	first := Discriminator(cnft.EventNameChangeLog)
	second := Discriminator(cnft.EventNameChangeLog)
	require.Equal(first, second)

	other := Discriminator(cnft.EventNameLeafSchema)
	require.NotEqual(first, other)
}

func TestSchemaDecode_ChangeLogEvent(t *testing.T) {
	require := testutil.Require(t)

	schema := NewSchema().Register(cnft.EventNameChangeLog, cnft.ChangeLogEvent{})

	expected := cnft.ChangeLogEvent{
		ID: cnft.MustPubkeyFromBase58("GRoLLzvxpxxu2PGNJMMeZPyMxjAUH9pKqxGXV9DGiovh"),
		Path: []cnft.PathNode{
			{Node: [32]byte{0xaa}, Index: 16},
			{Node: [32]byte{0xbb}, Index: 8},
		},
		Seq:   42,
		Index: 3,
	}

	payload := encodeEvent(t, cnft.EventNameChangeLog, expected)
	event, err := schema.Decode(payload)
	require.NoError(err)
	require.NotNil(event)
	require.Equal(cnft.EventNameChangeLog, event.Name)

	actual, ok := event.Data.(*cnft.ChangeLogEvent)
	require.True(ok)
	require.Equal(&expected, actual)
}

func TestSchemaDecode_NewNFTEvent(t *testing.T) {
	require := testutil.Require(t)

	schema := NewSchema().Register(cnft.EventNameNewLeaf, cnft.NewLeafEvent{})

	editionNonce := uint8(254)
	tokenStandard := cnft.TokenStandardNonFungible
	expected := cnft.NewLeafEvent{
		Version: cnft.VersionV1,
		Metadata: cnft.MetadataArgs{
			Name:                 "Degen Ape #3617",
			Symbol:               "DAPE",
			URI:                  "https://arweave.net/8a1JC4mKRjM9zTLZotC2AMZb1a2qt_hWmndUVZj8vIQ",
			SellerFeeBasisPoints: 420,
			PrimarySaleHappened:  true,
			IsMutable:            true,
			EditionNonce:         &editionNonce,
			TokenStandard:        &tokenStandard,
			Collection: &cnft.Collection{
				Verified: true,
				Key:      cnft.MustPubkeyFromBase58("GRoLLzvxpxxu2PGNJMMeZPyMxjAUH9pKqxGXV9DGiovh"),
			},
			Uses: &cnft.Uses{
				UseMethod: cnft.UseMethodMultiple,
				Remaining: 5,
				Total:     10,
			},
			TokenProgramVersion: cnft.TokenProgramVersionOriginal,
			Creators: []cnft.Creator{
				{
					Address:  cnft.MustPubkeyFromBase58("7Xi3XGxDzcrHxSe1mqVzyBUBM3r7Ni6XckXYqeaBN2UL"),
					Verified: true,
					Share:    100,
				},
			},
		},
		Nonce: 17,
	}

	payload := encodeEvent(t, cnft.EventNameNewLeaf, expected)
	event, err := schema.Decode(payload)
	require.NoError(err)
	require.NotNil(event)

	actual, ok := event.Data.(*cnft.NewLeafEvent)
	require.True(ok)
	require.Equal(&expected, actual)

	// the creators vector sits after the optional fields; it must survive
	// both with and without them present
	require.Equal(expected.Metadata.Creators, actual.Metadata.Creators)

	bare := expected
	bare.Metadata.EditionNonce = nil
	bare.Metadata.TokenStandard = nil
	bare.Metadata.Collection = nil
	bare.Metadata.Uses = nil

	payload = encodeEvent(t, cnft.EventNameNewLeaf, bare)
	event, err = schema.Decode(payload)
	require.NoError(err)

	actual, ok = event.Data.(*cnft.NewLeafEvent)
	require.True(ok)
	require.Nil(actual.Metadata.EditionNonce)
	require.Equal(expected.Metadata.Creators, actual.Metadata.Creators)
}

func TestSchemaDecode_LeafSchemaEvent(t *testing.T) {
	require := testutil.Require(t)

	schema := NewSchema().Register(cnft.EventNameLeafSchema, cnft.LeafSchemaEvent{})

	expected := cnft.LeafSchemaEvent{
		Version: cnft.VersionV1,
		Schema: cnft.LeafSchema{
			V1: cnft.LeafSchemaV1{
				ID:          cnft.MustPubkeyFromBase58("BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDJ8V9krD6z3z"),
				Owner:       cnft.MustPubkeyFromBase58("7Xi3XGxDzcrHxSe1mqVzyBUBM3r7Ni6XckXYqeaBN2UL"),
				Delegate:    cnft.MustPubkeyFromBase58("7Xi3XGxDzcrHxSe1mqVzyBUBM3r7Ni6XckXYqeaBN2UL"),
				Nonce:       17,
				DataHash:    [32]byte{0x1},
				CreatorHash: [32]byte{0x2},
			},
		},
	}

	payload := encodeEvent(t, cnft.EventNameLeafSchema, expected)
	event, err := schema.Decode(payload)
	require.NoError(err)
	require.NotNil(event)

	actual, ok := event.Data.(*cnft.LeafSchemaEvent)
	require.True(ok)

	v1, err := actual.V1Schema()
	require.NoError(err)
	require.Equal(&expected.Schema.V1, v1)
}

func TestSchemaDecode_UnknownDiscriminator(t *testing.T) {
	require := testutil.Require(t)

	schema := NewSchema().Register(cnft.EventNameChangeLog, cnft.ChangeLogEvent{})

	payload := encodeEvent(t, "SomeOtherEvent", cnft.DecompressionEvent{})
	event, err := schema.Decode(payload)
	require.NoError(err)
	require.Nil(event)
}

func TestSchemaDecode_ShortPayload(t *testing.T) {
	require := testutil.Require(t)

	schema := NewSchema().Register(cnft.EventNameChangeLog, cnft.ChangeLogEvent{})

	payload := base64.StdEncoding.EncodeToString([]byte{0x1, 0x2})
	event, err := schema.Decode(payload)
	require.NoError(err)
	require.Nil(event)
}

func TestSchemaDecode_InvalidBase64(t *testing.T) {
	require := testutil.Require(t)

	schema := NewSchema().Register(cnft.EventNameChangeLog, cnft.ChangeLogEvent{})

	event, err := schema.Decode("!!!not-base64!!!")
	require.Error(err)
	require.Nil(event)
}

func TestSchemaDecode_CorruptEventBody(t *testing.T) {
	require := testutil.Require(t)

	schema := NewSchema().Register(cnft.EventNameChangeLog, cnft.ChangeLogEvent{})

	discriminator := Discriminator(cnft.EventNameChangeLog)
	payload := base64.StdEncoding.EncodeToString(append(discriminator[:], 0xff))
	event, err := schema.Decode(payload)
	require.Error(err)
	require.Nil(event)
}
