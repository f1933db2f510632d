package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent learning activities, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		records := svc.All(cmd.Context())
		if len(records) == 0 {
			fmt.Println(theme.Hint.Render("No activity yet. Log one with: linglog log"))
			return nil
		}
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		for _, rec := range records {
			line := theme.Subtitle.Render(rec.CompletedAt.Local().Format("2006-01-02 15:04")) +
				"  " + theme.Metric.Render(fmt.Sprintf("%-12s", rec.Type)) +
				"  " + theme.Body.Render(rec.Title)
			if rec.Duration > 0 {
				line += theme.Subtitle.Render(fmt.Sprintf("  (%dm%02ds)", rec.Duration/60, rec.Duration%60))
			}
			if lvl := rec.Level(); lvl != "" {
				line += theme.Streak.Render("  " + lvl)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of records to show")
}
