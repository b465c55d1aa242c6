package utils

import (
	"go.uber.org/fx"

	"github.com/coinbase/treenode/internal/utils/fxparams"
	"github.com/coinbase/treenode/internal/utils/tally"
	"github.com/coinbase/treenode/internal/utils/taskpool"
)

var Module = fx.Options(
	fxparams.Module,
	tally.Module,
	taskpool.Module,
)
