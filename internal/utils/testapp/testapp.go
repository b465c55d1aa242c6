package testapp

import (
	"testing"

	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/coinbase/treenode/internal/aws"
	"github.com/coinbase/treenode/internal/config"
	"github.com/coinbase/treenode/internal/utils/constants"
	"github.com/coinbase/treenode/internal/utils/fxparams"
	"github.com/coinbase/treenode/internal/utils/log"
	"github.com/coinbase/treenode/internal/utils/taskpool"
	"github.com/coinbase/treenode/internal/utils/testutil"
)

type (
	TestApp interface {
		Close()
		Logger() *zap.Logger
		Config() *config.Config
	}

	TestFn func(t *testing.T, cfg *config.Config)

	testAppImpl struct {
		app    *fxtest.App
		logger *zap.Logger
		config *config.Config
	}

	localOnlyOption struct {
		fx.Option
	}
)

var testConfigNames = []string{
	"solana-mainnet",
	"solana-devnet",
}

func New(t testing.TB, opts ...fx.Option) TestApp {
	logger, err := log.NewDevelopment()
	if err != nil {
		panic(err)
	}

	var cfg *config.Config
	opts = append(
		opts,
		aws.Module,
		config.Module,
		fxparams.Module,
		taskpool.Module,
		fx.NopLogger,
		fx.Provide(func() testing.TB { return t }),
		fx.Provide(func() *zap.Logger { return logger }),
		fx.Provide(func() tally.Scope { return tally.NewTestScope(constants.ServiceName, nil) }),
		fx.Populate(&cfg),
	)

	app := fxtest.New(t, opts...)
	app.RequireStart()
	return &testAppImpl{
		app:    app,
		logger: logger,
		config: cfg,
	}
}

// WithConfig overrides the default config.
func WithConfig(cfg *config.Config) fx.Option {
	return config.WithCustomConfig(cfg)
}

// WithIntegration runs the test only if $TEST_TYPE is integration.
func WithIntegration() fx.Option {
	return &localOnlyOption{
		Option: fx.Invoke(func(tb testing.TB, cfg *config.Config, logger *zap.Logger) {
			if !cfg.IsIntegrationTest() {
				logger.Warn("skipping integration test", zap.String("test", tb.Name()))
				tb.Skip()
			}
		}),
	}
}

func (a *testAppImpl) Close() {
	a.app.RequireStop()
}

func (a *testAppImpl) Logger() *zap.Logger {
	return a.logger
}

func (a *testAppImpl) Config() *config.Config {
	return a.config
}

var EnvsToTest = []config.Env{
	config.EnvLocal,
	config.EnvDevelopment,
	config.EnvProduction,
}

func TestAllConfigs(t *testing.T, fn TestFn) {
	for _, configName := range testConfigNames {
		t.Run(configName, func(t *testing.T) {
			for _, env := range EnvsToTest {
				t.Run(string(env), func(t *testing.T) {
					require := testutil.Require(t)
					blockchain, network, err := config.ParseConfigName(configName)
					require.NoError(err)

					cfg, err := config.New(
						config.WithEnvironment(env),
						config.WithBlockchain(blockchain),
						config.WithNetwork(network),
					)
					require.NoError(err)
					require.Equal(env, cfg.Env())
					require.Equal(blockchain, cfg.Blockchain())
					require.Equal(network, cfg.Network())

					fn(t, cfg)
				})
			}
		})
	}
}
