package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sciquiz/internal/llm"
	"github.com/abhisek/sciquiz/internal/quiz"
	sess "github.com/abhisek/sciquiz/internal/session"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Generate and answer questions without the TUI",
	Long: `Generate questions on stdout and answer them on stdin.

Useful for quick rounds, scripting, and evaluating question quality.
With --verbose, each round prints the request ID, latency, token usage
and estimated cost.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("topic", "", "Topic: biology, chemistry, physics, astronomy, geology or anatomy (default: random from the default set)")
	askCmd.Flags().Int("difficulty", sess.DefaultDifficulty, "Difficulty 1-10")
	askCmd.Flags().Int("count", 1, "Number of questions")
}

func runAsk(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	verbose, _ := cmd.Flags().GetBool("verbose")

	usage := llm.NewUsageLog()
	provider, err := llm.NewProviderFromEnv(cmd.Context(), usage)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	session := sess.New(quiz.New(provider, quiz.DefaultConfig()))
	session.SetDifficulty(difficulty)

	if topicVal != "" {
		topic, err := quiz.ParseTopic(topicVal)
		if err != nil {
			return err
		}
		session.SelectTopics([]quiz.Topic{topic})
	}

	scanner := bufio.NewScanner(os.Stdin)

	for i := 1; i <= count; i++ {
		if err := session.Generate(cmd.Context()); err != nil {
			fmt.Printf("Question %d: %s\n\n", i, session.Snapshot().ErrorMsg)
			continue
		}

		snap := session.Snapshot()
		q := snap.Question

		fmt.Printf("── Question %d/%d · %s · difficulty %d ──\n", i, count, q.Topic.Display(), q.Difficulty)
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || session.SelectAnswer(choice-1) != nil {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}
		session.Reveal()

		snap = session.Snapshot()
		if snap.SelectedAnswer == q.CorrectAnswer {
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Options[q.CorrectAnswer])
		}
		fmt.Printf("Explanation: %s\n", q.Explanation)

		if verbose {
			if entry, ok := usage.Last(); ok {
				fmt.Printf("[%s] %s  %dms  %d in / %d out  $%.4f\n",
					entry.ID, entry.Model, entry.LatencyMs,
					entry.Usage.InputTokens, entry.Usage.OutputTokens, entry.CostUSD)
			}
		}
		fmt.Println()
	}

	st := session.Snapshot().Stats
	fmt.Printf("── %d/%d correct · best streak %d ──\n", st.Correct, st.Total, st.BestStreak)

	if verbose {
		t := usage.Totals()
		fmt.Printf("LLM usage: %d requests (%d failed), %d in / %d out tokens, $%.4f\n",
			t.Requests, t.Failures, t.InputTokens, t.OutputTokens, t.CostUSD)
	}
	return nil
}
