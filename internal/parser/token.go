package parser

import (
	"strconv"
	"strings"
)

type (
	TokenKind int

	// Token is one classified log line. Downstream stages never re-parse text.
	Token struct {
		Kind TokenKind

		// ProgramID is set for TokenInvoke and TokenSuccess.
		ProgramID string
		// Depth is set for TokenInvoke; it is the 1-based nesting level as logged.
		Depth int
		// Payload is the base64 payload of a TokenData line, padding included.
		Payload string
		// Name is the instruction name of a TokenInstruction line.
		Name string
		// Text is the raw line.
		Text string
	}
)

const (
	TokenPlain TokenKind = iota
	TokenInvoke
	TokenSuccess
	TokenData
	TokenInstruction
	TokenTruncated
)

const (
	programPrefix     = "Program "
	instructionPrefix = "Program log: Instruction: "
	dataPrefix        = "Program data: "
	logPrefix         = "Program log: "
	truncatedPrefix   = "Log truncated"

	invokeKeyword  = "invoke"
	successKeyword = "success"
)

// Tokenize classifies every log line of one transaction.
func Tokenize(lines []string) []Token {
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		tokens[i] = tokenizeLine(line)
	}
	return tokens
}

func tokenizeLine(line string) Token {
	if strings.HasPrefix(line, truncatedPrefix) {
		return Token{Kind: TokenTruncated, Text: line}
	}

	if strings.HasPrefix(line, instructionPrefix) {
		return Token{Kind: TokenInstruction, Name: strings.TrimSpace(line[len(instructionPrefix):]), Text: line}
	}

	if strings.HasPrefix(line, dataPrefix) {
		return Token{Kind: TokenData, Payload: strings.TrimSpace(line[len(dataPrefix):]), Text: line}
	}

	if strings.HasPrefix(line, programPrefix) && !strings.HasPrefix(line, logPrefix) {
		fields := strings.Fields(line[len(programPrefix):])
		switch {
		case len(fields) == 3 && fields[1] == invokeKeyword:
			if depth, ok := parseDepth(fields[2]); ok {
				return Token{Kind: TokenInvoke, ProgramID: fields[0], Depth: depth, Text: line}
			}
		case len(fields) == 2 && fields[1] == successKeyword:
			return Token{Kind: TokenSuccess, ProgramID: fields[0], Text: line}
		}
	}

	return Token{Kind: TokenPlain, Text: line}
}

func parseDepth(s string) (int, bool) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return 0, false
	}

	depth, err := strconv.Atoi(s[1 : len(s)-1])
	if err != nil || depth < 1 {
		return 0, false
	}

	return depth, true
}
