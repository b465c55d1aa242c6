package main

var (
	rootFlags struct {
		env        string
		blockchain string
		network    string
	}

	rootCommand = NewCommand("admin", nil)
)

func init() {
	rootCommand.Command.SilenceUsage = true
	rootCommand.StringVar(&rootFlags.env, "env", "local", false)
	rootCommand.StringVar(&rootFlags.blockchain, "blockchain", "solana", false)
	rootCommand.StringVar(&rootFlags.network, "network", "mainnet", false)
}
