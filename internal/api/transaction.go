package api

import (
	"golang.org/x/xerrors"
)

type (
	// Transaction is the per-transaction input envelope supplied by the caller.
	// Logs are the raw log lines the node attached to the executed transaction,
	// in emission order. Failed reflects the transaction's on-chain error flag.
	Transaction struct {
		TxID   string
		Slot   uint64
		Failed bool
		Logs   []string
		Window SequenceWindow
	}

	// SequenceWindow optionally bounds a replay or backfill. Both ends are
	// exclusive: events with seq <= Start or seq >= End are skipped.
	SequenceWindow struct {
		Start *Sequence
		End   *Sequence
	}

	// Status is the outcome of indexing one transaction.
	Status int
)

const (
	StatusUnknown Status = iota
	// StatusSuccess includes the no-activity case.
	StatusSuccess
	// StatusTransactionError means the transaction failed on chain and was not parsed.
	StatusTransactionError
	// StatusLogTruncated means the log capture was incomplete; the caller should re-fetch.
	StatusLogTruncated
)

// Skip reports whether an event with the given sequence falls outside the window.
func (w SequenceWindow) Skip(seq Sequence) bool {
	if w.Start != nil && seq <= *w.Start {
		return true
	}
	if w.End != nil && seq >= *w.End {
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusTransactionError:
		return "transaction_error"
	case StatusLogTruncated:
		return "log_truncated"
	default:
		return "unknown"
	}
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(value string) (Status, error) {
	switch value {
	case "success":
		return StatusSuccess, nil
	case "transaction_error":
		return StatusTransactionError, nil
	case "log_truncated":
		return StatusLogTruncated, nil
	case "unknown":
		return StatusUnknown, nil
	default:
		return StatusUnknown, xerrors.Errorf("unknown status %v", value)
	}
}
