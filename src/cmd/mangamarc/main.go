package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mangamarc/src/cmd/mangamarc/exportcmd"
	"mangamarc/src/cmd/mangamarc/showcmd"
	"mangamarc/src/cmd/mangamarc/verifycmd"
	"mangamarc/src/internal/config"
	"mangamarc/src/internal/log"
)

var (
	configFile string
	opts       = config.GetDefaultOptions()
)

// currentOptions is handed to subcommand packages; it reflects the config
// loaded by the root pre-run hook.
func currentOptions() *config.Options { return opts }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mangamarc",
		Short: "Convert manga volume metadata into MARC21 records for catalog import",
		Long: `mangamarc reads manga volume metadata (as returned by the lookup service)
and writes MARC21 bibliographic records with embedded 852 holdings, ready for
import into library systems such as Atriuum.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			loaded, err := config.Load(configFile)
			if err != nil {
				return err
			}
			opts = loaded
			log.Init(opts)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")

	root.AddCommand(exportcmd.New(currentOptions))
	root.AddCommand(showcmd.New(currentOptions))
	root.AddCommand(verifycmd.New())
	root.AddCommand(newBarcodesCmd())
	root.AddCommand(newVolumesCmd())
	root.AddCommand(newCallNumberCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
