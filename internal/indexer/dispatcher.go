package indexer

import (
	"go.uber.org/zap"

	"github.com/coinbase/treenode/internal/decoder"
	"github.com/coinbase/treenode/internal/parser"
)

type (
	// Invocation is one token-program instruction found in a transaction,
	// in log order.
	Invocation struct {
		Kind Kind
		Node *parser.Node
	}

	dispatcher struct {
		logger         *zap.Logger
		tokenProgramID string
	}
)

func newDispatcher(logger *zap.Logger, registry decoder.Registry) *dispatcher {
	return &dispatcher{
		logger:         logger,
		tokenProgramID: registry.ProgramID(decoder.RoleToken),
	}
}

// Dispatch walks the transaction's top-level frames depth-first and collects
// the token-program invocations. Frames of other programs recurse into their
// children, so the token program is found even when invoked as a CPI from an
// outer, unrelated program. A frame of the token program is classified once
// and never recursed into: its nested frames belong to the instruction.
func (d *dispatcher) Dispatch(nodes []*parser.Node) []Invocation {
	var invocations []Invocation
	for _, node := range nodes {
		invocations = d.dispatchNode(node, invocations)
	}

	return invocations
}

func (d *dispatcher) dispatchNode(node *parser.Node, invocations []Invocation) []Invocation {
	if node.ProgramID != d.tokenProgramID {
		for _, child := range node.Children {
			if child.Node != nil {
				invocations = d.dispatchNode(child.Node, invocations)
			}
		}
		return invocations
	}

	name, ok := node.InstructionName()
	if !ok {
		d.logger.Warn(
			"token program invocation without instruction line",
			zap.Int("depth", node.Depth),
		)
		return invocations
	}

	kind := ClassifyInstruction(name)
	if kind == KindUnknown {
		d.logger.Warn(
			"unrecognized instruction name",
			zap.String("instruction", name),
			zap.Int("depth", node.Depth),
		)
		return invocations
	}

	return append(invocations, Invocation{
		Kind: kind,
		Node: node,
	})
}
