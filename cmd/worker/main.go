package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/aws"
	"github.com/coinbase/treenode/internal/config"
	"github.com/coinbase/treenode/internal/decoder"
	"github.com/coinbase/treenode/internal/indexer"
	"github.com/coinbase/treenode/internal/storage"
	"github.com/coinbase/treenode/internal/utils"
	"github.com/coinbase/treenode/internal/utils/log"
	"github.com/coinbase/treenode/internal/worker"
)

var (
	feedFlag       = flag.String("feed", "", "comma-separated JSON-lines feed files, one shard per file")
	bestEffortFlag = flag.Bool("best-effort", false, "apply mutations individually instead of atomically per transaction")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "worker failed: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := log.NewDevelopment()
	if err != nil {
		return xerrors.Errorf("failed to create logger: %w", err)
	}

	if *feedFlag == "" {
		return xerrors.New("at least one feed file is required")
	}

	var w worker.Worker
	app := fx.New(
		aws.Module,
		config.Module,
		decoder.Module,
		indexer.Module,
		storage.Module,
		utils.Module,
		worker.Module,
		fx.NopLogger,
		fx.Provide(func() *zap.Logger { return logger }),
		fx.Populate(&w),
	)

	// SIGINT/SIGTERM cancels the draining context; app.Stop still runs.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		return xerrors.Errorf("failed to start app: %w", err)
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Error("failed to stop app", zap.Error(err))
		}
	}()

	feeds, err := openFeeds(strings.Split(*feedFlag, ","))
	if err != nil {
		return xerrors.Errorf("failed to open feeds: %w", err)
	}
	defer func() {
		for _, feed := range feeds {
			_ = feed.Close()
		}
	}()

	runFeeds := w.Run
	if *bestEffortFlag {
		runFeeds = w.RunBestEffort
	}

	if err := runFeeds(ctx, feeds); err != nil {
		return xerrors.Errorf("failed to drain feeds: %w", err)
	}

	logger.Info("worker finished")
	return nil
}

func openFeeds(paths []string) ([]worker.Feed, error) {
	feeds := make([]worker.Feed, 0, len(paths))
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		feed, err := worker.NewFileFeed(path)
		if err != nil {
			return nil, err
		}

		feeds = append(feeds, feed)
	}

	return feeds, nil
}
