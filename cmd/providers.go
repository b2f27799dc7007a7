package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubecare/kubectl-diagnose/pkg/llm"
)

func NewProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported AI providers and their configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Supported providers (select with AI_PROVIDER or --provider):")
			fmt.Println()
			for _, p := range llm.Providers() {
				switch p {
				case llm.ProviderClaude:
					fmt.Println("  claude   aliases: anthropic")
					fmt.Println("           key: AI_API_KEY or ANTHROPIC_API_KEY")
				case llm.ProviderOpenAI:
					fmt.Println("  openai   aliases: chatgpt, gpt")
					fmt.Println("           key: AI_API_KEY or OPENAI_API_KEY")
				case llm.ProviderOllama:
					fmt.Println("  ollama   aliases: local")
					fmt.Printf("           endpoint: OLLAMA_URL (default %s), no key needed\n", llm.DefaultOllamaURL)
				}
				fmt.Println()
			}
			fmt.Println("AI_MODEL overrides the per-provider default model.")
		},
	}
}
