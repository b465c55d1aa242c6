package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/aws"
	"github.com/coinbase/treenode/internal/config"
	"github.com/coinbase/treenode/internal/decoder"
	"github.com/coinbase/treenode/internal/indexer"
	"github.com/coinbase/treenode/internal/storage"
	"github.com/coinbase/treenode/internal/utils/fxparams"
	"github.com/coinbase/treenode/internal/utils/log"
	"github.com/coinbase/treenode/internal/utils/taskpool"
)

type (
	App struct {
		Config *config.Config
		Logger *zap.Logger

		app *fx.App
	}
)

func NewApp(opts ...fx.Option) (*App, error) {
	logger, err := log.NewDevelopment()
	if err != nil {
		return nil, xerrors.Errorf("failed to create logger: %w", err)
	}

	env := config.Env(rootFlags.env)
	network := fmt.Sprintf("%v-%v", rootFlags.blockchain, rootFlags.network)

	cfg, err := config.New(
		config.WithEnvironment(env),
		config.WithBlockchain(rootFlags.blockchain),
		config.WithNetwork(network),
	)
	if err != nil {
		return nil, xerrors.Errorf("failed to create config: %w", err)
	}

	logger.Info(
		"starting app",
		zap.String("env", string(env)),
		zap.String("blockchain", rootFlags.blockchain),
		zap.String("network", network),
	)

	opts = append(opts,
		aws.Module,
		config.Module,
		config.WithCustomConfig(cfg),
		decoder.Module,
		fxparams.Module,
		indexer.Module,
		storage.Module,
		taskpool.Module,
		fx.NopLogger,
		fx.Provide(func() *zap.Logger { return logger }),
		fx.Provide(func() tally.Scope { return tally.NoopScope }),
	)
	app := fx.New(opts...)
	if err := app.Start(context.Background()); err != nil {
		return nil, xerrors.Errorf("failed to start app: %w", err)
	}

	return &App{
		Config: cfg,
		Logger: logger,
		app:    app,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}

	if err := a.app.Stop(context.Background()); err != nil {
		a.Logger.Error("failed to stop app", zap.Error(err))
	}
}

func (a *App) Confirm(prompt string) bool {
	msg := color.MagentaString(fmt.Sprintf("[%v::%v] ", a.Config.Env(), a.Config.Network())) +
		color.CyanString(prompt+" (y/N) ")

	fmt.Printf(msg)
	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		a.Logger.Error("failed to read from console", zap.Error(err))
		return false
	}

	if strings.ToLower(strings.TrimSpace(response)) != "y" {
		return false
	}

	return true
}
