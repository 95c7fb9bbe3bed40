package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sciquiz/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "LLM configuration diagnostics",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify LLM configuration and connectivity",
	Long:  "Resolves the configured provider, sends a minimal generation request, and reports model, latency and token usage.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := llm.ResolveConfig()
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
		fmt.Printf("Provider: %s\n", cfg.Provider)

		usage := llm.NewUsageLog()
		provider, err := llm.NewProvider(cmd.Context(), cfg, usage)
		if err != nil {
			return err
		}
		fmt.Printf("Model:    %s\n", provider.ModelID())

		ctx := llm.WithPurpose(cmd.Context(), "check")
		resp, err := provider.Generate(ctx, llm.Request{
			System: "You are a connectivity probe. Follow the instruction exactly.",
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: "Reply with the single word: ready"},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("probe request: %w", err)
		}

		fmt.Println("Status:   ok")
		if entry, ok := usage.Last(); ok {
			fmt.Printf("Latency:  %dms\n", entry.LatencyMs)
			fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
			if entry.CostUSD > 0 {
				fmt.Printf("Cost:     $%.6f\n", entry.CostUSD)
			}
		}
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
