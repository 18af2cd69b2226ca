package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vignesh-goutham/solid/cmd/rundemo"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solid",
		Short: "solid - runnable SOLID design principle demos",
		Long: `solid runs small demos of the SOLID design principles:
a greeting service, a store checkout, an employee termination workflow and shape areas.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(rundemo.NewRunDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
