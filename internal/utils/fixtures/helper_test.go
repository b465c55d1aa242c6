package fixtures

import (
	"testing"

	"github.com/coinbase/treenode/internal/utils/testutil"
)

func TestReadFile(t *testing.T) {
	require := testutil.Require(t)

	data, err := ReadFile("parser/mint_logs.json")
	require.NoError(err)
	require.NotEmpty(data)
}

func TestReadFile_NotFound(t *testing.T) {
	require := testutil.Require(t)

	_, err := ReadFile("parser/unknown.json")
	require.Error(err)

	require.Panics(func() {
		MustReadFile("parser/unknown.json")
	})
}

func TestMustReadLogs(t *testing.T) {
	require := testutil.Require(t)

	lines := MustReadLogs("parser/mint_logs.json")
	require.NotEmpty(lines)
	for _, line := range lines {
		require.NotEmpty(line)
	}
}
