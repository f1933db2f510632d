package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/report"
	"github.com/enpeak/linglog/internal/ui/theme"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show earned and locked badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		stats := svc.Stats(ctx)
		life := svc.Lifetime(ctx)
		records := svc.All(ctx)

		badges := report.Achievements(records, stats.Streak, life.TotalWords)

		earned := 0
		for _, b := range badges {
			if b.Achieved {
				earned++
			}
		}
		fmt.Println(theme.Title.Render("Achievements") +
			theme.Subtitle.Render(fmt.Sprintf("  %d / %d", earned, len(badges))))
		fmt.Println()

		for _, b := range badges {
			if b.Achieved {
				fmt.Printf("%s %s — %s\n",
					theme.Achieved.Render("✓"),
					theme.Achieved.Render(b.Name),
					theme.Body.Render(b.Description))
			} else {
				fmt.Printf("%s %s — %s\n",
					theme.Locked.Render("○"),
					theme.Locked.Render(b.Name),
					theme.Locked.Render(b.Condition))
			}
		}
		return nil
	},
}
