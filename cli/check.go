package cli

import (
	"fmt"
	"io"

	"github.com/habedi/giveup"
	"github.com/habedi/giveup/config"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// checkCmd validates a configuration file and shows the effective settings.
// It is the library's own dogfood: a bad or absent file ends the process with
// a hint on how to fix it.
func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [configFile]",
		Short: "Validate a configuration file and show its settings",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := args[0]
			log.Debug().Str("path", path).Msg("Checking configuration file")

			cfg := giveup.On(config.Load(path)).
				Hint("Create a configuration file").
				Example("touch " + path).
				Giveup("Missing configuration file")

			printSettings(cmd.OutOrStdout(), cfg)
		},
	}
	return cmd
}

// printSettings renders the loaded settings as a table.
func printSettings(w io.Writer, cfg *config.Config) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Setting", "Value"})

	// Table appearance settings
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)

	table.Append([]string{"Name", cfg.Name})
	table.Append([]string{"Workdir", cfg.Workdir})
	table.Append([]string{"Threads", fmt.Sprintf("%d", cfg.Threads)})

	table.Render()
}
