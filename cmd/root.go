package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aerotester",
	Short: "Empirical aerodynamics backend for the 2D shape tester",
	Long: `aerotester - backend for the 2D aerodynamics shape tester

Estimates drag, lift, Reynolds number and vortex shedding for sketched
2D silhouettes using empirical regime-based coefficient models, and
persists past runs for replay. It is deliberately not a CFD solver.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("aerotester - empirical aerodynamics backend")
		fmt.Println()
		fmt.Println("Use 'aerotester serve' to start the backend,")
		fmt.Println("or 'aerotester --help' for all commands.")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
