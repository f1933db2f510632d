package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/report"
	"github.com/enpeak/linglog/internal/ui/components"
	"github.com/enpeak/linglog/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's counters, streak, and activity breakdowns",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func runStats(cmd *cobra.Command) error {
	svc, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	stats := svc.Stats(ctx)
	life := svc.Lifetime(ctx)
	records := svc.All(ctx)
	now := svc.Now()

	fmt.Println(theme.Title.Render("Today"))
	fmt.Println(theme.Streak.Render(fmt.Sprintf("★ %d-day streak", stats.Streak)) +
		theme.Subtitle.Render(fmt.Sprintf("  (best: %d)", stats.BestStreak)))
	fmt.Printf("%s sessions   %s min   %s words   %s scenarios\n",
		theme.Metric.Render(fmt.Sprintf("%d", stats.TotalSessions)),
		theme.Metric.Render(fmt.Sprintf("%d", stats.TotalMinutes)),
		theme.Metric.Render(fmt.Sprintf("%d", stats.VocabularyWords)),
		theme.Metric.Render(fmt.Sprintf("%d", stats.ConversationScenarios)))

	fmt.Println()
	fmt.Println(theme.Title.Render("All time"))
	fmt.Printf("%s sessions   %s min   %s words\n",
		theme.Metric.Render(fmt.Sprintf("%d", life.TotalSessions)),
		theme.Metric.Render(fmt.Sprintf("%d", life.TotalMinutes)),
		theme.Metric.Render(fmt.Sprintf("%d", life.TotalWords)))

	dist := report.Distribution(records)
	if dist.Total > 0 {
		fmt.Println()
		fmt.Println(theme.Title.Render("By activity"))
		max := maxOf(dist.Vocabulary, dist.Conversation, dist.Chat, dist.Community)
		for _, row := range []struct {
			label string
			count int
		}{
			{"vocabulary  ", dist.Vocabulary},
			{"conversation", dist.Conversation},
			{"chat        ", dist.Chat},
			{"community   ", dist.Community},
		} {
			fmt.Println(components.NewBar(row.label, row.count, max, 24).View())
		}
	}

	if month, _ := cmd.Flags().GetBool("month"); month {
		fmt.Println()
		fmt.Println(theme.Title.Render("Last 30 days"))
		printHeatmap(report.Heatmap(records, now, 30))
	}

	if hours, _ := cmd.Flags().GetBool("hours"); hours {
		fmt.Println()
		fmt.Println(theme.Title.Render("By hour"))
		pattern := report.HourlyPattern(records)
		max := 0
		for _, c := range pattern {
			if c > max {
				max = c
			}
		}
		for h, c := range pattern {
			if c == 0 {
				continue
			}
			fmt.Println(components.NewBar(fmt.Sprintf("%02d:00", h), c, max, 24).View())
		}
		if hour, count, ok := report.PeakHour(records); ok {
			fmt.Println(theme.Hint.Render(fmt.Sprintf("Peak: %02d:00 with %d sessions", hour, count)))
		}
	}

	if levels, _ := cmd.Flags().GetBool("levels"); levels {
		fmt.Println()
		fmt.Println(theme.Title.Render("By level"))
		counts := report.LevelDistribution(records)
		max := 0
		for _, c := range counts {
			if c > max {
				max = c
			}
		}
		for _, lvl := range report.CEFRLevels {
			fmt.Println(components.NewBar(lvl, counts[lvl], max, 24).View())
		}
	}

	return nil
}

// printHeatmap renders 30 day cells in rows of ten.
func printHeatmap(days []report.HeatmapDay) {
	var sb strings.Builder
	for i, day := range days {
		if i > 0 && i%10 == 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(heatCell(day.Count))
		sb.WriteString(" ")
	}
	fmt.Println(sb.String())
}

func heatCell(count int) string {
	switch {
	case count == 0:
		return theme.Locked.Render("·")
	case count < 3:
		return theme.Positive.Render("▪")
	default:
		return theme.Achieved.Render("■")
	}
}

func maxOf(vals ...int) int {
	max := 0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}

func init() {
	statsCmd.Flags().Bool("month", false, "Include the 30-day activity heatmap")
	statsCmd.Flags().Bool("hours", false, "Include the hour-of-day pattern")
	statsCmd.Flags().Bool("levels", false, "Include the CEFR level distribution")
}
