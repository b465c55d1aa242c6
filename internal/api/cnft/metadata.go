package cnft

import (
	"github.com/near/borsh-go"
)

type (
	// MetadataArgs is the creation-time metadata of a compressed asset,
	// borsh-encoded inside NewNFTEvent. The field order is the wire layout;
	// optional fields are borsh options (1-byte tag + value).
	MetadataArgs struct {
		Name                 string
		Symbol               string
		URI                  string
		SellerFeeBasisPoints uint16
		PrimarySaleHappened  bool
		IsMutable            bool
		EditionNonce         *uint8
		TokenStandard        *TokenStandard
		Collection           *Collection
		Uses                 *Uses
		TokenProgramVersion  TokenProgramVersion
		Creators             []Creator
	}

	TokenProgramVersion borsh.Enum

	TokenStandard borsh.Enum

	Collection struct {
		Verified bool
		Key      Pubkey
	}

	Uses struct {
		UseMethod UseMethod
		Remaining uint64
		Total     uint64
	}

	UseMethod borsh.Enum

	Creator struct {
		Address  Pubkey
		Verified bool
		Share    uint8
	}
)

const (
	TokenProgramVersionOriginal TokenProgramVersion = iota
	TokenProgramVersionToken2022
)

const (
	TokenStandardNonFungible TokenStandard = iota
	TokenStandardFungibleAsset
	TokenStandardFungible
	TokenStandardNonFungibleEdition
)

const (
	UseMethodBurn UseMethod = iota
	UseMethodMultiple
	UseMethodSingle
)
