package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/sciquiz/internal/app"
	"github.com/abhisek/sciquiz/internal/llm"
	"github.com/abhisek/sciquiz/internal/quiz"
	sess "github.com/abhisek/sciquiz/internal/session"
)

// runApp validates configuration, wires the provider and session, and
// launches the TUI. A missing credential is fatal here: the process
// exits before any UI starts.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	usage := llm.NewUsageLog()
	provider, err := llm.NewProviderFromEnv(ctx, usage)
	if err != nil {
		var missing *llm.ErrMissingCredential
		if errors.As(err, &missing) {
			fmt.Fprintln(os.Stderr, "No LLM credential configured:", missing.Error())
			fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY (or the SCIQUIZ_* equivalents) and try again.")
		}
		return err
	}

	generator := quiz.New(provider, quiz.DefaultConfig())
	session := sess.New(generator)

	slog.Debug("starting session", "id", session.ID(), "model", provider.ModelID())

	return app.Run(app.Options{Session: session, Usage: usage})
}
