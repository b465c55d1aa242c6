package parser

import (
	"testing"

	"github.com/coinbase/treenode/internal/utils/testutil"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Token
	}{
		{
			name: "invoke",
			line: "Program " + tokenProgramIDFixture + " invoke [2]",
			expected: Token{
				Kind:      TokenInvoke,
				ProgramID: tokenProgramIDFixture,
				Depth:     2,
			},
		},
		{
			name: "success",
			line: "Program " + treeProgramIDFixture + " success",
			expected: Token{
				Kind:      TokenSuccess,
				ProgramID: treeProgramIDFixture,
			},
		},
		{
			name: "instruction",
			line: "Program log: Instruction: CancelRedeem",
			expected: Token{
				Kind: TokenInstruction,
				Name: "CancelRedeem",
			},
		},
		{
			name: "data",
			line: "Program data: Jds2G0HLnlhW5Ktg",
			expected: Token{
				Kind:    TokenData,
				Payload: "Jds2G0HLnlhW5Ktg",
			},
		},
		{
			name: "truncated",
			line: "Log truncated",
			expected: Token{
				Kind: TokenTruncated,
			},
		},
		{
			name: "plain log",
			line: "Program log: Appending leaf",
			expected: Token{
				Kind: TokenPlain,
			},
		},
		{
			name: "compute units",
			line: "Program " + tokenProgramIDFixture + " consumed 38241 of 200000 compute units",
			expected: Token{
				Kind: TokenPlain,
			},
		},
		{
			name: "malformed invoke depth",
			line: "Program " + tokenProgramIDFixture + " invoke [x]",
			expected: Token{
				Kind: TokenPlain,
			},
		},
		{
			name: "failed marker",
			line: "Program " + tokenProgramIDFixture + " failed: custom program error: 0x1",
			expected: Token{
				Kind: TokenPlain,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := testutil.Require(t)

			actual := tokenizeLine(test.line)
			test.expected.Text = test.line
			require.Equal(test.expected, actual)
		})
	}
}
