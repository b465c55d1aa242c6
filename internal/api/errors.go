package api

import (
	"golang.org/x/xerrors"
)

var (
	ErrNotImplemented = xerrors.New("not implemented")

	// ErrLogTruncated indicates the log capture is incomplete and the
	// structural parse cannot be trusted.
	ErrLogTruncated = xerrors.New("log truncated")
)
