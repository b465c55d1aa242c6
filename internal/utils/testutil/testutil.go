package testutil

import (
	"time"

	"github.com/stretchr/testify/require"
)

// Require returns a require.Assertions bound to t, so assertions read as
// require.NoError(err) instead of require.NoError(t, err).
func Require(t require.TestingT) *require.Assertions {
	return require.New(t)
}

func MustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(err)
	}
	return t
}

// MakeFile returns sizeMB megabytes of deterministic data, large enough to
// cross the blob offload threshold.
func MakeFile(sizeMB int) []byte {
	data := make([]byte, sizeMB*1024*1024)
	for i := range data {
		data[i] = byte(i % 251)
	}
	return data
}
