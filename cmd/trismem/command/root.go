// Package command implements the trismem CLI's subcommands on top of
// cobra, with viper wiring its tunables to flags and TRISMEM_*
// environment variables.
package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arborgraph/trismem/internal/bunch"
)

// RootCmd is the trismem command's entry point.
var RootCmd = &cobra.Command{
	Use:   "trismem",
	Short: "Exercise the trismem in-memory triple store from the command line",
}

func init() {
	viper.SetEnvPrefix("TRISMEM")
	viper.AutomaticEnv()

	RootCmd.PersistentFlags().Int("promotion-threshold", bunch.ArrayPromotionThreshold,
		"expected array-to-hashed bunch promotion threshold, for display only")
	_ = viper.BindPFlag("promotion_threshold", RootCmd.PersistentFlags().Lookup("promotion-threshold"))

	RootCmd.AddCommand(demoCmd)
	RootCmd.AddCommand(queryCmd)
}

func warnIfThresholdMismatch() {
	configured := viper.GetInt("promotion_threshold")
	if configured != bunch.ArrayPromotionThreshold {
		fmt.Printf("note: --promotion-threshold=%d was requested but the compiled-in threshold is %d; it is fixed at build time\n",
			configured, bunch.ArrayPromotionThreshold)
	}
}
