package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rowstore version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rowstore version %s\n", Version)
	},
}
