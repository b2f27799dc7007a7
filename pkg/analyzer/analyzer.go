package analyzer

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kubecare/kubectl-diagnose/pkg/llm"
	"github.com/kubecare/kubectl-diagnose/pkg/model"
	"github.com/kubecare/kubectl-diagnose/pkg/parser"
	"github.com/kubecare/kubectl-diagnose/pkg/prompts"
)

// Analyzer sends one pod's error text to the configured backend and parses
// the reply. Stateless; one instance can serve any number of calls.
type Analyzer struct {
	llm llm.LLM
}

func New(opts llm.Options) (*Analyzer, error) {
	backend, err := llm.New(opts)
	if err != nil {
		return nil, err
	}
	return &Analyzer{llm: backend}, nil
}

func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l}
}

// Raw runs the backend call and returns the generated text verbatim.
// Failure means no text at all; there is never partial output.
func (a *Analyzer) Raw(ctx context.Context, errorText, contextText string) (string, error) {
	prompt := prompts.BuildDiagnosisPrompt(errorText, contextText)

	log.WithField("provider", a.llm.Name()).Debug("requesting diagnosis")
	raw, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return raw, nil
}

// Diagnose is Raw plus field extraction. The parse itself cannot fail;
// an error here always means the backend produced no usable text.
func (a *Analyzer) Diagnose(ctx context.Context, errorText, contextText string) (*model.Diagnosis, error) {
	raw, err := a.Raw(ctx, errorText, contextText)
	if err != nil {
		return nil, err
	}
	return parser.ParseDiagnosis(raw), nil
}
