package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/report"
	"github.com/enpeak/linglog/internal/ui/components"
	"github.com/enpeak/linglog/internal/ui/theme"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's activity (Monday start)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		records := svc.All(ctx)
		now := svc.Now()

		if dayIdx, _ := cmd.Flags().GetInt("day"); dayIdx >= 0 {
			if dayIdx > 6 {
				return fmt.Errorf("--day must be 0 (Monday) through 6 (Sunday)")
			}
			day := report.Day(records, now, dayIdx)
			fmt.Println(theme.Title.Render(fmt.Sprintf("%s %s", report.WeekdayLabels[dayIdx], day.Date)))
			fmt.Printf("%s sessions   %s conversations   %s words   %s chats\n",
				theme.Metric.Render(fmt.Sprintf("%d", day.TotalSessions)),
				theme.Metric.Render(fmt.Sprintf("%d", day.Conversations)),
				theme.Metric.Render(fmt.Sprintf("%d", day.VocabularyWords)),
				theme.Metric.Render(fmt.Sprintf("%d", day.ChatSessions)))
			return nil
		}

		summary := report.Weekly(records, now)
		active := report.WeeklyActivity(records, now)

		fmt.Println(theme.Title.Render("This week"))
		fmt.Println(components.Dots(active) + theme.Subtitle.Render(fmt.Sprintf("   %d active days", summary.TotalDays)))
		fmt.Printf("%s sessions   %s words   %s conversations   %s chats\n",
			theme.Metric.Render(fmt.Sprintf("%d", summary.TotalSessions)),
			theme.Metric.Render(fmt.Sprintf("%d", summary.VocabularyWords)),
			theme.Metric.Render(fmt.Sprintf("%d", summary.Conversations)),
			theme.Metric.Render(fmt.Sprintf("%d", summary.ChatSessions)))

		chart := report.WeekdayChart(records, now)
		max := 0
		for _, day := range chart {
			if day.Total > max {
				max = day.Total
			}
		}
		if max > 0 {
			fmt.Println()
			for _, day := range chart {
				fmt.Println(components.NewBar(day.Day, day.Total, max, 20).View())
			}
		}

		cmp := report.CompareWeeks(records, now)
		fmt.Println()
		fmt.Println(theme.Title.Render("vs last week"))
		printChange("Sessions", cmp.Changes.Sessions)
		printChange("Active days", cmp.Changes.Days)
		printChange("Words", cmp.Changes.Words)
		printChange("Conversations", cmp.Changes.Conversations)

		return nil
	},
}

func printChange(label string, delta int) {
	switch {
	case delta > 0:
		fmt.Printf("%-14s %s\n", label, theme.Positive.Render(fmt.Sprintf("+%d", delta)))
	case delta < 0:
		fmt.Printf("%-14s %s\n", label, theme.Negative.Render(fmt.Sprintf("%d", delta)))
	default:
		fmt.Printf("%-14s %s\n", label, theme.Subtitle.Render("±0"))
	}
}

func init() {
	weekCmd.Flags().Int("day", -1, "Show one weekday in detail (0=Mon .. 6=Sun)")
}
