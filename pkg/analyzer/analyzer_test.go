package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubecare/kubectl-diagnose/pkg/llm"
	"github.com/kubecare/kubectl-diagnose/pkg/model"
)

type stubLLM struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubLLM) Name() string { return "stub" }

func (s *stubLLM) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestDiagnoseEndToEnd(t *testing.T) {
	stub := &stubLLM{reply: `ISSUE: Container keeps crashing
CAUSE: Application exits immediately
FIX: Check container logs for the root cause
COMMAND: none`}

	a := NewWithLLM(stub)

	diagnosis, err := a.Diagnose(context.Background(),
		"Back-off restarting failed container",
		"Pod: foo, Status: CrashLoopBackOff")
	require.NoError(t, err)

	assert.Equal(t, &model.Diagnosis{
		Issue:   "Container keeps crashing",
		Cause:   "Application exits immediately",
		Fix:     "Check container logs for the root cause",
		Command: "none",
	}, diagnosis)

	// The prompt must carry both inputs for the model to work with.
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Back-off restarting failed container")
	assert.Contains(t, stub.prompts[0], "Pod: foo, Status: CrashLoopBackOff")
}

func TestDiagnoseBackendFailure(t *testing.T) {
	stub := &stubLLM{err: llm.ErrRequestFailed}
	a := NewWithLLM(stub)

	diagnosis, err := a.Diagnose(context.Background(), "err", "ctx")
	assert.Nil(t, diagnosis, "no partial result on failure")
	assert.ErrorIs(t, err, llm.ErrRequestFailed)
}

func TestDiagnoseUnstructuredReply(t *testing.T) {
	// A reply that ignores the format is still a success, just with
	// nothing extracted.
	stub := &stubLLM{reply: "I am not sure what is wrong with this pod."}
	a := NewWithLLM(stub)

	diagnosis, err := a.Diagnose(context.Background(), "err", "ctx")
	require.NoError(t, err)
	assert.True(t, diagnosis.Empty())
}

func TestNewPropagatesFactoryErrors(t *testing.T) {
	_, err := New(llm.Options{})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	_, err = New(llm.Options{Provider: "something-else"})
	assert.ErrorIs(t, err, llm.ErrUnknownProvider)
}

func TestRawReturnsVerbatimText(t *testing.T) {
	reply := "ISSUE: x\n\nextra prose the parser would drop"
	a := NewWithLLM(&stubLLM{reply: reply})

	raw, err := a.Raw(context.Background(), "err", "ctx")
	require.NoError(t, err)
	assert.Equal(t, reply, raw)
	assert.True(t, strings.Contains(raw, "extra prose"))
}
