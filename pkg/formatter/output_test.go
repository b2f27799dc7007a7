package formatter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kubecare/kubectl-diagnose/pkg/model"
)

func init() {
	// Keep escape codes out of the assertions.
	color.NoColor = true
}

func TestDisplayHumanSuppressesNoneCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		shown   bool
	}{
		{"real command", "kubectl logs pod/foo", true},
		{"literal none", "none", false},
		{"capitalized none", "None", false},
		{"absent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := &model.Diagnosis{Issue: "crash", Cause: "oom", Fix: "raise limits", Command: tt.command}

			require.NoError(t, New(&buf).Display(d, "human"))

			if tt.shown {
				assert.Contains(t, buf.String(), "SUGGESTED COMMAND")
				assert.Contains(t, buf.String(), tt.command)
			} else {
				assert.NotContains(t, buf.String(), "SUGGESTED COMMAND")
			}
		})
	}
}

func TestDisplayHumanSkipsAbsentSections(t *testing.T) {
	var buf bytes.Buffer
	d := &model.Diagnosis{Issue: "only an issue"}

	require.NoError(t, New(&buf).Display(d, "human"))

	out := buf.String()
	assert.Contains(t, out, "ISSUE")
	assert.Contains(t, out, "only an issue")
	assert.NotContains(t, out, "CAUSE")
	assert.NotContains(t, out, "FIX")
}

func TestDisplayHumanEmptyDiagnosis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Display(&model.Diagnosis{}, "human"))
	assert.Contains(t, buf.String(), "no recognizable sections")
}

func TestDisplayJSON(t *testing.T) {
	var buf bytes.Buffer
	d := &model.Diagnosis{Issue: "crash", Command: "none"}

	require.NoError(t, New(&buf).Display(d, "json"))

	var got model.Diagnosis
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *d, got)

	// Absent fields are omitted, not emitted as empty strings.
	assert.NotContains(t, buf.String(), "cause")
}

func TestDisplayYAML(t *testing.T) {
	var buf bytes.Buffer
	d := &model.Diagnosis{Issue: "crash", Fix: "restart"}

	require.NoError(t, New(&buf).Display(d, "yaml"))

	var got model.Diagnosis
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *d, got)
}

func TestDisplayPodState(t *testing.T) {
	var buf bytes.Buffer
	pc := &model.PodContext{
		Name:      "api-1",
		Namespace: "prod",
		Status:    "CrashLoopBackOff",
		ErrorText: "Back-off restarting failed container",
	}

	New(&buf).DisplayPodState(pc)

	out := buf.String()
	assert.Contains(t, out, "prod/api-1: CrashLoopBackOff")
	assert.Contains(t, out, "Back-off restarting failed container")
}
