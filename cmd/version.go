package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("linglog", version)

		if check, _ := cmd.Flags().GetBool("check"); check {
			checker := selfupdate.NewChecker()
			result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
			if err != nil {
				fmt.Fprintln(os.Stderr, "warning: version check failed:", err)
				return nil
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s → %s\n", version, result.LatestVersion)
				fmt.Println("Run: linglog update")
			} else {
				fmt.Println("You are up to date.")
			}
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
