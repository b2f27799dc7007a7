package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/client-go/util/homedir"

	"github.com/kubecare/kubectl-diagnose/pkg/analyzer"
	"github.com/kubecare/kubectl-diagnose/pkg/config"
	"github.com/kubecare/kubectl-diagnose/pkg/formatter"
	"github.com/kubecare/kubectl-diagnose/pkg/k8s"
	"github.com/kubecare/kubectl-diagnose/pkg/llm"
)

var (
	kubeconfig   string
	namespace    string
	outputFormat string
	providerName string
	modelName    string
	verbose      bool
)

func NewPodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pod NAME",
		Short: "Diagnose a failing pod with AI assistance",
		Long: `Collect a pod's status and recent warning events and ask the configured
AI backend what is wrong, why, and what to do about it.

Examples:
  # Diagnose a crash-looping pod
  kubectl diagnose pod api-7d4b9c-xk2p1 -n production

  # Use a local Ollama instead of a hosted provider
  kubectl diagnose pod api-7d4b9c-xk2p1 --provider ollama

  # Machine-readable output
  kubectl diagnose pod api-7d4b9c-xk2p1 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runPod,
	}

	// Flags
	if home := homedir.HomeDir(); home != "" {
		cmd.Flags().StringVar(&kubeconfig, "kubeconfig", filepath.Join(home, ".kube", "config"), "Path to kubeconfig file")
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Kubernetes namespace")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&providerName, "provider", "", "AI provider override (claude, openai, ollama)")
	cmd.Flags().StringVar(&modelName, "model", "", "Model override for the selected provider")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runPod(cmd *cobra.Command, args []string) error {
	podName := args[0]
	ctx := context.Background()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	opts := config.Load()
	if providerName != "" {
		opts.Provider = providerName
	}
	if modelName != "" {
		opts.Model = modelName
	}

	printHeader(podName)

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Connecting to Kubernetes cluster..."
	s.Start()

	k8sClient, err := k8s.NewClient(kubeconfig)
	if err != nil {
		s.Stop()
		return fmt.Errorf("failed to connect to cluster: %w", err)
	}
	s.Stop()
	printSuccess("Connected to Kubernetes cluster")

	s.Suffix = " Gathering pod state..."
	s.Start()

	podCtx, err := k8sClient.GatherPodContext(ctx, namespace, podName)
	if err != nil {
		s.Stop()
		return fmt.Errorf("failed to gather pod state: %w", err)
	}
	s.Stop()
	printSuccess(fmt.Sprintf("Gathered state for pod %s", podName))

	out := formatter.New(os.Stdout)
	out.DisplayPodState(podCtx)

	if podCtx.Healthy() {
		printSuccess("No errors detected, skipping AI analysis")
		return nil
	}

	aiAnalyzer, err := analyzer.New(opts)
	if err != nil {
		warnNoDiagnosis(err)
		return nil
	}

	s.Suffix = " Analyzing with AI..."
	s.Start()

	diagnosis, err := aiAnalyzer.Diagnose(ctx, podCtx.ErrorText, podCtx.ContextLine())
	s.Stop()
	if err != nil {
		warnNoDiagnosis(err)
		return nil
	}
	printSuccess("Analysis complete")

	return out.Display(diagnosis, outputFormat)
}

// warnNoDiagnosis downgrades every backend failure to a warning: the pod
// state is already on screen and the user can proceed without the AI.
func warnNoDiagnosis(err error) {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Warn("AI_PROVIDER not set, no AI diagnosis available")
	case errors.Is(err, llm.ErrBackendUnreachable):
		log.Warnf("local AI backend is not reachable: %v", err)
	default:
		log.Warnf("no AI diagnosis available: %v", err)
	}
}

func printHeader(podName string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🩺 Kubernetes Pod Diagnosis")
	fmt.Printf("📦 Pod: %s\n", podName)
	fmt.Printf("📍 Namespace: %s\n", namespace)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}
