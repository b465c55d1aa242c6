package cnft

import (
	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/xerrors"
)

// Pubkey is a 32-byte program or account address, rendered as base58 in logs
// and storage keys.
type Pubkey [32]byte

func PubkeyFromBase58(s string) (Pubkey, error) {
	var key Pubkey
	decoded := base58.Decode(s)
	if len(decoded) != len(key) {
		return key, xerrors.Errorf("invalid pubkey (%v): expected %v bytes, got %v", s, len(key), len(decoded))
	}

	copy(key[:], decoded)
	return key, nil
}

func MustPubkeyFromBase58(s string) Pubkey {
	key, err := PubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return key
}

func (k Pubkey) String() string {
	return base58.Encode(k[:])
}

func (k Pubkey) IsZero() bool {
	return k == Pubkey{}
}
