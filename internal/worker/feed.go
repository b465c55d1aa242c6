package worker

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api"
)

type (
	// Feed yields transactions in commitment order. Implementations return
	// io.EOF when drained.
	Feed interface {
		Next() (*api.Transaction, error)
		Close() error
	}

	// transactionEnvelope is the JSON-lines wire form of one captured
	// transaction.
	transactionEnvelope struct {
		TxID     string   `json:"tx_id"`
		Slot     uint64   `json:"slot"`
		Failed   bool     `json:"failed"`
		Logs     []string `json:"logs"`
		StartSeq *uint64  `json:"start_seq,omitempty"`
		EndSeq   *uint64  `json:"end_seq,omitempty"`
	}

	fileFeed struct {
		file    *os.File
		scanner *bufio.Scanner
	}
)

// log captures of large transactions routinely exceed bufio's default token size
const maxLineSize = 16 * 1024 * 1024

var _ Feed = (*fileFeed)(nil)

// NewFileFeed reads a JSON-lines file where each line is one transaction
// envelope: {"tx_id", "slot", "failed", "logs", "start_seq", "end_seq"}.
func NewFileFeed(path string) (Feed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to open feed %v: %w", path, err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &fileFeed{
		file:    file,
		scanner: scanner,
	}, nil
}

func (f *fileFeed) Next() (*api.Transaction, error) {
	for f.scanner.Scan() {
		line := f.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var envelope transactionEnvelope
		if err := json.Unmarshal(line, &envelope); err != nil {
			return nil, xerrors.Errorf("failed to unmarshal transaction envelope: %w", err)
		}

		return envelope.AsTransaction(), nil
	}

	if err := f.scanner.Err(); err != nil {
		return nil, xerrors.Errorf("failed to read feed: %w", err)
	}

	return nil, io.EOF
}

func (f *fileFeed) Close() error {
	return f.file.Close()
}

func (e *transactionEnvelope) AsTransaction() *api.Transaction {
	transaction := &api.Transaction{
		TxID:   e.TxID,
		Slot:   e.Slot,
		Failed: e.Failed,
		Logs:   e.Logs,
	}
	if e.StartSeq != nil {
		start := api.Sequence(*e.StartSeq)
		transaction.Window.Start = &start
	}
	if e.EndSeq != nil {
		end := api.Sequence(*e.EndSeq)
		transaction.Window.End = &end
	}

	return transaction
}
