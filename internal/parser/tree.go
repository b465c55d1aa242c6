package parser

import (
	"fmt"

	"github.com/coinbase/treenode/internal/api"
)

type (
	// Node is one program invocation frame. Depth is zero-based: the nesting
	// level logged in the invoke marker minus one.
	Node struct {
		ProgramID string
		Depth     int
		Children  []Child
	}

	// Child is either a nested invocation or a single non-structural line,
	// in original log order.
	Child struct {
		Token *Token
		Node  *Node
	}

	// ParseError indicates a structural violation. No partial tree is returned.
	ParseError struct {
		Line   int
		Reason string
	}
)

func (e *ParseError) Error() string {
	return fmt.Sprintf("log parse error at line %v: %v", e.Line, e.Reason)
}

// Parse converts the ordered log lines of one transaction into a list of
// top-level invocation frames. A truncation marker anywhere in the input
// yields api.ErrLogTruncated before any structural decision is trusted.
// The parse runs in a single pass over the token buffer.
func Parse(lines []string) ([]*Node, error) {
	tokens := Tokenize(lines)
	for _, token := range tokens {
		if token.Kind == TokenTruncated {
			return nil, api.ErrLogTruncated
		}
	}

	var nodes []*Node
	cursor := 0
	for cursor < len(tokens) {
		token := &tokens[cursor]
		switch token.Kind {
		case TokenInvoke:
			node, next, err := parseNode(tokens, cursor)
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, node)
			cursor = next
		case TokenSuccess:
			return nil, &ParseError{
				Line:   cursor,
				Reason: fmt.Sprintf("unmatched success marker for program %v", token.ProgramID),
			}
		default:
			// Lines outside any invocation frame carry no structure.
			cursor += 1
		}
	}

	return nodes, nil
}

// parseNode consumes one invocation frame starting at the invoke marker at
// tokens[cursor] and returns the index right after its success marker.
func parseNode(tokens []Token, cursor int) (*Node, int, error) {
	invoke := &tokens[cursor]
	node := &Node{
		ProgramID: invoke.ProgramID,
		Depth:     invoke.Depth - 1,
	}

	i := cursor + 1
	for i < len(tokens) {
		token := &tokens[i]
		switch token.Kind {
		case TokenInvoke:
			child, next, err := parseNode(tokens, i)
			if err != nil {
				return nil, 0, err
			}

			node.Children = append(node.Children, Child{Node: child})
			i = next
		case TokenSuccess:
			if token.ProgramID != node.ProgramID {
				return nil, 0, &ParseError{
					Line:   i,
					Reason: fmt.Sprintf("success marker for program %v closes invocation of program %v", token.ProgramID, node.ProgramID),
				}
			}

			return node, i + 1, nil
		default:
			node.Children = append(node.Children, Child{Token: token})
			i += 1
		}
	}

	return nil, 0, &ParseError{
		Line:   i,
		Reason: fmt.Sprintf("invocation of program %v is never closed", node.ProgramID),
	}
}

// InstructionName returns the name on the frame's first non-structural line,
// if that line has the "Instruction: <Name>" form.
func (n *Node) InstructionName() (string, bool) {
	for _, child := range n.Children {
		if child.Token == nil {
			continue
		}

		if child.Token.Kind == TokenInstruction {
			return child.Token.Name, true
		}

		return "", false
	}

	return "", false
}

// Walk visits the node and its nested frames depth-first in log order.
func (n *Node) Walk(visit func(node *Node) bool) {
	if !visit(n) {
		return
	}

	for _, child := range n.Children {
		if child.Node != nil {
			child.Node.Walk(visit)
		}
	}
}
