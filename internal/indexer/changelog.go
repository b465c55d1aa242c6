package indexer

import (
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/api/cnft"
	"github.com/coinbase/treenode/internal/decoder"
	"github.com/coinbase/treenode/internal/parser"
)

// changelogExtractor holds the changelog events of one transaction in
// emission order. The tree program emits its changelog right before its
// success marker, so the candidate line is the last data line of each
// tree-program frame. The whole transaction tree is searched up front
// because the tree program may be invoked as a sibling CPI several frames
// away from the instruction that logically caused it; consumers then pair
// events with instructions positionally via Next. A frame without a usable
// changelog occupies its queue position as a nil entry, so only the
// instruction that caused it is voided and siblings keep their own events.
type changelogExtractor struct {
	events []*cnft.ChangeLogEvent
	cursor int
}

func newChangelogExtractor(
	logger *zap.Logger,
	registry decoder.Registry,
	maxPathDepth int,
	nodes []*parser.Node,
) (*changelogExtractor, error) {
	treeProgramID := registry.ProgramID(decoder.RoleTree)
	schema, ok := registry.SchemaFor(treeProgramID)
	if !ok {
		return nil, xerrors.Errorf("no schema registered for tree program %v", treeProgramID)
	}

	extractor := &changelogExtractor{}
	for _, node := range nodes {
		var walkErr error
		node.Walk(func(frame *parser.Node) bool {
			if frame.ProgramID != treeProgramID {
				return true
			}

			event, err := decodeFrameChangelog(schema, frame)
			if err != nil {
				walkErr = err
				return false
			}

			if event != nil && len(event.Path) > maxPathDepth {
				logger.Warn(
					"changelog path exceeds depth bound, rejecting event",
					zap.String("tree", event.ID.String()),
					zap.Int("path_len", len(event.Path)),
					zap.Int("max_path_depth", maxPathDepth),
				)
				event = nil
			}

			if event == nil {
				logger.Warn(
					"tree program frame without changelog event",
					zap.Int("depth", frame.Depth),
				)
			}

			extractor.events = append(extractor.events, event)
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	return extractor, nil
}

// decodeFrameChangelog decodes the last data line of one tree-program frame.
// A frame without a decodable changelog returns nil.
func decodeFrameChangelog(schema *decoder.Schema, frame *parser.Node) (*cnft.ChangeLogEvent, error) {
	for i := len(frame.Children) - 1; i >= 0; i-- {
		child := frame.Children[i]
		if child.Token == nil || child.Token.Kind != parser.TokenData {
			continue
		}

		event, err := schema.Decode(child.Token.Payload)
		if err != nil {
			return nil, xerrors.Errorf("failed to decode tree program data line: %w", err)
		}

		if event == nil {
			return nil, nil
		}

		changelog, ok := event.Data.(*cnft.ChangeLogEvent)
		if !ok {
			return nil, xerrors.Errorf("unexpected event %v in tree program frame", event.Name)
		}

		return changelog, nil
	}

	return nil, nil
}

// Next returns the next queue entry, if any. A nil event with ok=true marks
// a tree-program frame whose changelog was missing or rejected.
func (e *changelogExtractor) Next() (*cnft.ChangeLogEvent, bool) {
	if e.cursor >= len(e.events) {
		return nil, false
	}

	event := e.events[e.cursor]
	e.cursor += 1
	return event, true
}

// Remaining returns the number of unconsumed changelog events.
func (e *changelogExtractor) Remaining() int {
	return len(e.events) - e.cursor
}
