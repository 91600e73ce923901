// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"quillbooks/bookpipe/internal/common"
	"quillbooks/bookpipe/internal/config"
	"quillbooks/bookpipe/internal/logging"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger for commands, configured in PersistentPreRun.
	Log = logging.Default()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags are the persistent flags common to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bookpipe",
		Short: "A CLI tool to parse bank statements and categorize transactions.",
		Long: `bookpipe parses bank statement exports (CSV, OFX, QFX) into a
normalized transaction model, categorizes each transaction through a rule
engine with an embedding-similarity fallback, and exports the result as
injection-safe CSV for bookkeeping tools.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bookpipe!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(nil)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = logging.New(cfg.Log.Level, cfg.Log.Format)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			return nil
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}
