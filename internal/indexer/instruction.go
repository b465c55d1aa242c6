package indexer

type (
	// Kind is the closed set of token-program instructions this indexer
	// understands. Classification is purely textual, resolved once per
	// invocation frame from its "Instruction: <Name>" line.
	Kind int
)

const (
	KindUnknown Kind = iota
	KindCreateTree
	KindMint
	KindTransfer
	KindDelegate
	KindBurn
	KindRedeem
	KindCancelRedeem
	KindDecompress
	KindCompress
	KindSetTreeDelegate
)

var instructionKinds = map[string]Kind{
	"CreateTree":      KindCreateTree,
	"Mint":            KindMint,
	"Transfer":        KindTransfer,
	"Delegate":        KindDelegate,
	"Burn":            KindBurn,
	"Redeem":          KindRedeem,
	"CancelRedeem":    KindCancelRedeem,
	"Decompress":      KindDecompress,
	"Compress":        KindCompress,
	"SetTreeDelegate": KindSetTreeDelegate,
}

// ClassifyInstruction maps a logged instruction name onto its kind.
// Names outside the closed set classify as KindUnknown.
func ClassifyInstruction(name string) Kind {
	if kind, ok := instructionKinds[name]; ok {
		return kind
	}

	return KindUnknown
}

func (k Kind) String() string {
	switch k {
	case KindCreateTree:
		return "CreateTree"
	case KindMint:
		return "Mint"
	case KindTransfer:
		return "Transfer"
	case KindDelegate:
		return "Delegate"
	case KindBurn:
		return "Burn"
	case KindRedeem:
		return "Redeem"
	case KindCancelRedeem:
		return "CancelRedeem"
	case KindDecompress:
		return "Decompress"
	case KindCompress:
		return "Compress"
	case KindSetTreeDelegate:
		return "SetTreeDelegate"
	default:
		return "Unknown"
	}
}

// IsAdministrative reports whether the kind manages tree configuration
// without emitting a usable changelog.
func (k Kind) IsAdministrative() bool {
	return k == KindCompress || k == KindSetTreeDelegate
}

// RequiresChangelog reports whether the kind's handler consumes a changelog
// event from the transaction's tree-program frames.
func (k Kind) RequiresChangelog() bool {
	switch k {
	case KindCreateTree, KindMint, KindTransfer, KindDelegate, KindBurn, KindRedeem, KindCancelRedeem:
		return true
	default:
		return false
	}
}
