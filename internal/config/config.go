package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/config"
)

type (
	Config struct {
		ConfigName string         `mapstructure:"config_name" validate:"required"`
		Chain      ChainConfig    `mapstructure:"chain"`
		Tag        TagConfig      `mapstructure:"tag"`
		AWS        AWSConfig      `mapstructure:"aws"`
		Indexer    IndexerConfig  `mapstructure:"indexer"`
		Worker     WorkerConfig   `mapstructure:"worker"`
		TaskPool   TaskPoolConfig `mapstructure:"task_pool"`

		env Env
	}

	// TagConfig versions the persisted collections. Bumping the stable tag
	// re-indexes into a fresh keyspace without touching the previous one.
	TagConfig struct {
		Stable uint32 `mapstructure:"stable" validate:"required"`
		Latest uint32 `mapstructure:"latest" validate:"required"`
	}

	ChainConfig struct {
		Blockchain string `mapstructure:"blockchain" validate:"required"`
		Network    string `mapstructure:"network" validate:"required"`

		// TreeProgram is the merkle-tree program whose changelog events are indexed.
		// TokenProgram is the compressed-token program built on top of it.
		TreeProgram  string `mapstructure:"tree_program" validate:"required"`
		TokenProgram string `mapstructure:"token_program" validate:"required"`
	}

	AWSConfig struct {
		Region       string         `mapstructure:"region" validate:"required"`
		Bucket       string         `mapstructure:"bucket"`
		DynamoDB     DynamoDBConfig `mapstructure:"dynamodb"`
		IsLocalStack bool           `mapstructure:"local_stack"`
		IsResetLocal bool           `mapstructure:"reset_local"`
	}

	DynamoDBConfig struct {
		CollectionTable string `mapstructure:"collection_table"`
		MaxDataSize     int    `mapstructure:"max_data_size"`
	}

	IndexerConfig struct {
		// MaxPathDepth bounds the number of path nodes accepted from a single
		// changelog event. Events above the bound are rejected as malformed.
		MaxPathDepth int `mapstructure:"max_path_depth" validate:"required"`
	}

	WorkerConfig struct {
		BatchSize   int           `mapstructure:"batch_size" validate:"required"`
		Parallelism int           `mapstructure:"parallelism" validate:"required"`
		Backoff     time.Duration `mapstructure:"backoff"`
	}

	TaskPoolConfig struct {
		Size int `mapstructure:"size" validate:"required"`
	}

	ConfigOption func(options *configOptions)

	Env string

	configOptions struct {
		Blockchain string `validate:"required"`
		Network    string `validate:"required"`
		Env        Env    `validate:"required,oneof=production development local"`
	}

	// derivedConfig defines a callback where a config struct can override its
	// fields based on the global config.
	derivedConfig interface {
		DeriveConfig(cfg *Config)
	}
)

const (
	EnvVarConfigName  = "TREENODE_CONFIG_NAME"
	EnvVarEnvironment = "TREENODE_ENVIRONMENT"
	EnvVarTestType    = "TEST_TYPE"
	EnvVarCI          = "CI"

	Namespace         = "treenode"
	DefaultConfigName = "solana-mainnet"

	EnvBase        Env = "base"
	EnvLocal       Env = "local"
	EnvProduction  Env = "production"
	EnvDevelopment Env = "development"

	collectionTableFormat = "treenode-collection-%s"
	collectionS3Format    = "treenode-collections-%s-%s"

	// ddb max item size limit is 400KB. 4KB reserved for attribute names.
	ddbMaxDataSize = 396 * 1024

	tagBlockchain = "blockchain"
	tagNetwork    = "network"
)

var (
	_ derivedConfig = (*AWSConfig)(nil)

	envShortMap = map[Env]string{
		EnvLocal:       "local",
		EnvDevelopment: "dev",
		EnvProduction:  "prod",
	}
)

func New(opts ...ConfigOption) (*Config, error) {
	validate := validator.New()

	configName := getConfigName()

	configOpts, err := getConfigOptions(configName, opts...)
	if err != nil {
		return nil, xerrors.Errorf("failed to get config options: %w", err)
	}

	if err := validate.Struct(configOpts); err != nil {
		return nil, xerrors.Errorf("failed to validate config options: %w", err)
	}

	configReader, err := getConfigData(Namespace, EnvBase, configOpts.Blockchain, configOpts.Network)
	if err != nil {
		return nil, xerrors.Errorf("failed to locate config file: %w", err)
	}

	cfg := Config{
		env: configOpts.Env,
	}

	v := viper.New()
	v.SetConfigName(string(EnvBase))
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	v.SetEnvPrefix("TREENODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Default values may be overridden by environment variable or config file.
	if cfg.Env() == EnvLocal {
		v.SetDefault("aws.local_stack", true)
	}
	if cfg.IsTest() {
		v.SetDefault("aws.local_stack", true)
		v.SetDefault("aws.reset_local", true)
	}

	if err := v.ReadConfig(configReader); err != nil {
		return nil, xerrors.Errorf("failed to read config: %w", err)
	}

	// Merge in the env-specific config, such as development.yml
	if err := mergeInConfig(v, configOpts, configOpts.Env); err != nil {
		return nil, xerrors.Errorf("failed to merge in %v config: %w", configOpts.Env, err)
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, xerrors.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.setDerivedConfigs(reflect.ValueOf(&cfg))

	if err := validate.Struct(&cfg); err != nil {
		return nil, xerrors.Errorf("failed to validate config: %w", err)
	}

	return &cfg, nil
}

func getConfigName() string {
	configName, ok := os.LookupEnv(EnvVarConfigName)
	if !ok {
		configName = DefaultConfigName
	}
	return configName
}

func mergeInConfig(v *viper.Viper, configOpts *configOptions, env Env) error {
	if configReader, err := getConfigData(Namespace, env, configOpts.Blockchain, configOpts.Network); err == nil {
		v.SetConfigName(string(env))
		if err := v.MergeConfig(configReader); err != nil {
			return xerrors.Errorf("failed to merge config %v: %w", env, err)
		}
	}
	return nil
}

func getConfigData(namespace string, env Env, blockchain string, network string) (io.Reader, error) {
	networkName := strings.TrimPrefix(network, blockchain+"-")
	configPath := fmt.Sprintf("%v/%v/%v/%v.yml", namespace, blockchain, networkName, env)
	return config.Store.Open(configPath)
}

func getConfigOptions(configName string, opts ...ConfigOption) (*configOptions, error) {
	blockchain, network, err := ParseConfigName(configName)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse config name: %w", err)
	}

	env := Env(os.Getenv(EnvVarEnvironment))
	if env == "" {
		env = EnvLocal
	}

	configOpts := &configOptions{
		Blockchain: blockchain,
		Network:    network,
		Env:        env,
	}

	for _, opt := range opts {
		opt(configOpts)
	}

	return configOpts, nil
}

// ParseConfigName splits a config name such as "solana-mainnet" into its
// blockchain ("solana") and network ("solana-mainnet") parts.
func ParseConfigName(configName string) (string, string, error) {
	configName = strings.ReplaceAll(configName, "_", "-")

	splitString := strings.Split(configName, "-")
	if len(splitString) != 2 {
		return "", "", xerrors.Errorf("config name is invalid: %v", configName)
	}

	return splitString[0], configName, nil
}

func WithBlockchain(blockchain string) ConfigOption {
	return func(opts *configOptions) {
		opts.Blockchain = blockchain
	}
}

func WithNetwork(network string) ConfigOption {
	return func(opts *configOptions) {
		opts.Network = network
	}
}

func WithEnvironment(env Env) ConfigOption {
	return func(opts *configOptions) {
		opts.Env = env
	}
}

func (c *Config) Env() Env {
	return c.env
}

func (c *Config) ShortEnv() string {
	if short, ok := envShortMap[c.env]; ok {
		return short
	}
	return "dev"
}

func (c *Config) Blockchain() string {
	return c.Chain.Blockchain
}

func (c *Config) Network() string {
	return c.Chain.Network
}

func (c *Config) GetCommonTags() map[string]string {
	return map[string]string{
		tagBlockchain: c.Blockchain(),
		tagNetwork:    c.Network(),
	}
}

func (c *Config) IsCI() bool {
	return os.Getenv(EnvVarCI) != ""
}

func (c *Config) IsUnitTest() bool {
	return os.Getenv(EnvVarTestType) == "unit"
}

func (c *Config) IsIntegrationTest() bool {
	return os.Getenv(EnvVarTestType) == "integration"
}

func (c *Config) IsTest() bool {
	return os.Getenv(EnvVarTestType) != ""
}

// setDerivedConfigs recursively calls DeriveConfig on all the derivedConfig.
func (c *Config) setDerivedConfigs(v reflect.Value) {
	if v.CanInterface() {
		if oc, ok := v.Interface().(derivedConfig); ok {
			oc.DeriveConfig(c)
			return
		}
	}

	elem := v.Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		if field.Kind() == reflect.Struct {
			c.setDerivedConfigs(field.Addr())
		}
	}
}

func (t *TagConfig) GetEffectiveTag(tag uint32) uint32 {
	if tag == 0 {
		return t.Stable
	}

	return tag
}

func (c *AWSConfig) DeriveConfig(cfg *Config) {
	if c.Bucket == "" {
		c.Bucket = fmt.Sprintf(collectionS3Format, cfg.ConfigName, cfg.ShortEnv())
	}

	if c.DynamoDB.CollectionTable == "" {
		c.DynamoDB.CollectionTable = fmt.Sprintf(collectionTableFormat, cfg.ConfigName)
	}

	if c.DynamoDB.MaxDataSize == 0 {
		c.DynamoDB.MaxDataSize = ddbMaxDataSize
	}
}
