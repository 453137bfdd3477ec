package commands

import (
	"fmt"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/configs"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// echoConfCmd implements the 'echo-conf' command. It prints the commented
// sample configuration, ready to be redirected into a file and edited; with
// --effective it dumps the configuration actually in force instead, after the
// config file and flags have been applied.
var echoConfCmd = &cobra.Command{
	Use:   "echo-conf",
	Short: "Print a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		effective, err := cmd.Flags().GetBool("effective")
		if err != nil {
			return err
		}
		if effective {
			_, err := pp.Fprintln(cmd.OutOrStdout(), GetConfig())
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), configs.DefaultYAML)
		return err
	},
}

func init() {
	echoConfCmd.Flags().Bool("effective", false, "dump the effective configuration instead of the sample")

	rootCmd.AddCommand(echoConfCmd)
}
