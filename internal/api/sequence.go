package api

import (
	"fmt"
	"strconv"

	"golang.org/x/xerrors"
)

// Sequence is the per-tree mono-increasing counter assigned by the tree
// program on every mutation.
// It could have one of the following representations:
// - uint64: underlying type
// - decimal string: used in object keys and logs
// - hex-encoded string with zero padding: used as sort key in storage
type Sequence uint64

const (
	InitialSequence Sequence = 0
)

func ParsePaddedHexSequence(s string) (Sequence, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, xerrors.Errorf("failed to parse uint64 (%v): %w", s, err)
	}

	return Sequence(v), nil
}

func (s Sequence) AsDecimal() string {
	return strconv.FormatUint(uint64(s), 10)
}

func (s Sequence) AsPaddedHex() string {
	return fmt.Sprintf("%016s", strconv.FormatUint(uint64(s), 16))
}

func (s Sequence) AsUint64() uint64 {
	return uint64(s)
}
