package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/history"
	"github.com/enpeak/linglog/internal/ui/theme"
)

var logCmd = &cobra.Command{
	Use:   "log <type> <title>",
	Short: "Record a completed learning activity",
	Long: `Record a completed learning activity.

Types: conversation, vocabulary, community, chat

Examples:
  linglog log vocabulary "Daily words" --word serendipity --duration 180
  linglog log conversation "Ordering coffee" --scenario cafe-01 --duration 420 --stage 2 --stages 5 --level B1
  linglog log vocabulary "Level quiz" --correct 8 --total 10 --level A2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		recType := history.RecordType(args[0])
		if !recType.Valid() {
			return fmt.Errorf("unknown activity type %q (want conversation, vocabulary, community, or chat)", args[0])
		}

		category, _ := cmd.Flags().GetString("category")
		scenario, _ := cmd.Flags().GetString("scenario")
		word, _ := cmd.Flags().GetString("word")
		duration, _ := cmd.Flags().GetInt("duration")
		level, _ := cmd.Flags().GetString("level")
		correct, _ := cmd.Flags().GetInt("correct")
		total, _ := cmd.Flags().GetInt("total")
		stage, _ := cmd.Flags().GetInt("stage")
		stages, _ := cmd.Flags().GetInt("stages")

		nr := history.NewRecord{
			Type:       recType,
			Title:      args[1],
			Category:   category,
			ScenarioID: scenario,
			Word:       word,
			Duration:   duration,
		}
		switch {
		case stage > 0 || stages > 0:
			nr.Details = &history.StageDetails{Stage: stage, TotalStages: stages, Level: level}
		case total > 0 || correct > 0:
			nr.Details = &history.QuizDetails{Level: level, CorrectCount: correct, TotalCount: total}
		case level != "":
			nr.Details = &history.QuizDetails{Level: level}
		}

		svc, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		rec := svc.Add(cmd.Context(), nr)
		stats := svc.Stats(cmd.Context())

		fmt.Println(theme.Body.Render(fmt.Sprintf("Logged %s: %s", rec.Type, rec.Title)))
		fmt.Println(theme.Streak.Render(fmt.Sprintf("★ %d-day streak", stats.Streak)) +
			theme.Subtitle.Render(fmt.Sprintf("  ·  %d sessions today", stats.TotalSessions)))
		return nil
	},
}

func init() {
	logCmd.Flags().String("category", "", "Free-form category label")
	logCmd.Flags().String("scenario", "", "Scenario identifier for conversation activities")
	logCmd.Flags().String("word", "", "Word studied, for vocabulary activities")
	logCmd.Flags().IntP("duration", "d", 0, "Duration in seconds")
	logCmd.Flags().String("level", "", "CEFR level of the activity (A1-C2)")
	logCmd.Flags().Int("correct", 0, "Correct answers, for quiz results")
	logCmd.Flags().Int("total", 0, "Total questions, for quiz results")
	logCmd.Flags().Int("stage", 0, "Stage reached, for staged scenarios")
	logCmd.Flags().Int("stages", 0, "Total stages, for staged scenarios")
}
