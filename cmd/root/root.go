// Package root contains the root command and the shared state of the CLI.
package root

import (
	"time"

	"github.com/spf13/cobra"

	"pfischer/moneymoney/internal/applescript"
	"pfischer/moneymoney/internal/config"
	"pfischer/moneymoney/internal/logging"
	"pfischer/moneymoney/pkg/backend"
	"pfischer/moneymoney/pkg/backend/memory"
)

var (
	// Log is the shared logger instance for commands, configured in the
	// persistent pre-run.
	Log logging.Logger = logging.Default()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Fixtures, when set, swaps the live transport for an in-memory backend
	// loaded from a YAML fixture file.
	Fixtures string

	// Age is the shared transaction look-back window flag in days; zero
	// means the configured default.
	Age int

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "moneymoney",
		Short: "Query and annotate MoneyMoney accounts from the command line.",
		Long: `moneymoney talks to the MoneyMoney application through its scripting
interface. It lists accounts and portfolios, exports transactions to CSV,
prints the category tree and marks transactions as checked.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Init registers the persistent flags of the root command.
func Init() {
	Cmd.PersistentFlags().StringVar(&Fixtures, "fixtures", "",
		"read data from a YAML fixture file instead of the MoneyMoney application")
	Cmd.PersistentFlags().IntVar(&Age, "age", 0,
		"transaction look-back window in days (default from configuration)")
}

// Backend builds the transport selected by the flags: the live AppleScript
// bridge, or the in-memory backend when --fixtures is given.
func Backend() (backend.Backend, error) {
	if Fixtures != "" {
		Log.Debug("using fixture backend",
			logging.Field{Key: logging.FieldFixture, Value: Fixtures})
		return memory.LoadFile(Fixtures)
	}
	return applescript.New(
		applescript.WithBinary(Cfg.AppleScript.Binary),
		applescript.WithTimeout(time.Duration(Cfg.AppleScript.TimeoutSeconds)*time.Second),
		applescript.WithLogger(Log),
	), nil
}

// EffectiveAge resolves the --age flag against the configured default.
func EffectiveAge() int {
	if Age > 0 {
		return Age
	}
	return Cfg.Query.DefaultAgeDays
}
