package main

import (
	"fmt"
	"os"

	"github.com/kubecare/kubectl-diagnose/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kubectl-diagnose",
		Short: "AI-assisted diagnosis of failing Kubernetes pods",
		Long: `kubectl-diagnose inspects a failing pod, collects its status and recent
warning events, and asks an AI backend (Claude, OpenAI or a local Ollama)
for a short diagnosis: the issue, its cause, a fix, and a kubectl command
to run next.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewPodCmd(),
		cmd.NewProvidersCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kubectl-diagnose version %s\n", version)
		},
	}
}
