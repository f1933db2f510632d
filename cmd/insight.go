package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/coach"
	"github.com/enpeak/linglog/internal/llm"
	"github.com/enpeak/linglog/internal/report"
	"github.com/enpeak/linglog/internal/ui/theme"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Show observations about your recent study pattern",
	Long: `Show observations about your recent study pattern.

By default the observations come from built-in templates. With --ai an
LLM coach phrases them instead, falling back to the templates when no
provider is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		in := report.BuildInsightInput(svc.All(ctx), svc.Now(), svc.Stats(ctx), svc.Lifetime(ctx))

		var msgs []string
		if useAI, _ := cmd.Flags().GetBool("ai"); useAI {
			msgs = aiInsights(cmd, in)
		}
		if msgs == nil {
			msgs = report.Insights(in)
		}

		if len(msgs) == 0 {
			fmt.Println(theme.Hint.Render("Nothing to report yet. Log a few activities first."))
			return nil
		}
		for _, m := range msgs {
			fmt.Println(theme.Body.Render("• " + m))
		}
		return nil
	},
}

// aiInsights asks the LLM coach for observations. A nil return means
// the caller should use the template insights instead.
func aiInsights(cmd *cobra.Command, in report.InsightInput) []string {
	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in insights.")
		return nil
	}

	msgs, err := coach.New(provider, coach.DefaultConfig()).Messages(ctx, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in insights.")
		return nil
	}
	return msgs
}

func init() {
	insightCmd.Flags().Bool("ai", false, "Phrase insights with the LLM coach")
}
