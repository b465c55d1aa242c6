package api

import (
	"testing"

	"github.com/coinbase/treenode/internal/utils/testutil"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name      string
		sequence  Sequence
		decimal   string
		paddedHex string
	}{
		{
			name:      "initial",
			sequence:  InitialSequence,
			decimal:   "0",
			paddedHex: "0000000000000000",
		},
		{
			name:      "small",
			sequence:  Sequence(18),
			decimal:   "18",
			paddedHex: "0000000000000012",
		},
		{
			name:      "large",
			sequence:  Sequence(1<<40 + 7),
			decimal:   "1099511627783",
			paddedHex: "0000010000000007",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := testutil.Require(t)

			require.Equal(test.decimal, test.sequence.AsDecimal())
			require.Equal(test.paddedHex, test.sequence.AsPaddedHex())
			require.Equal(uint64(test.sequence), test.sequence.AsUint64())

			parsed, err := ParsePaddedHexSequence(test.paddedHex)
			require.NoError(err)
			require.Equal(test.sequence, parsed)
		})
	}
}

func TestParsePaddedHexSequence_Invalid(t *testing.T) {
	require := testutil.Require(t)

	_, err := ParsePaddedHexSequence("not-hex")
	require.Error(err)
}
