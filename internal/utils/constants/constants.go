package constants

const (
	// ServiceName is the name of this service.
	ServiceName     = "treenode"
	FullServiceName = "coinbase.treenode.TreeNode"
)
