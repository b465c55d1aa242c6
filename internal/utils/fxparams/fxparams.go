package fxparams

import (
	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/coinbase/treenode/internal/config"
)

type (
	// Params bundles the dependencies shared by most constructors.
	// Embed it in a fx.In params struct to receive all of them at once.
	Params struct {
		fx.In
		Config  *config.Config
		Logger  *zap.Logger
		Metrics tally.Scope
	}
)

var Module = fx.Options()
