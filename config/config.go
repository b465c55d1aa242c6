package config

import (
	"embed"
)

// Store embeds the per-network config files, laid out as
// treenode/<blockchain>/<network>/<env>.yml.
//
//go:embed treenode
var Store embed.FS
