package parser

import (
	"strings"

	"github.com/kubecare/kubectl-diagnose/pkg/model"
)

var fields = []string{"ISSUE", "CAUSE", "FIX", "COMMAND"}

// ParseDiagnosis pulls the four labeled sections out of the model's reply.
//
// The reply is free text, not JSON: models follow the requested format most
// of the time but drop, reorder or re-case labels, so the scan is line-based
// and case-insensitive. For each field the first line starting with
// "<FIELD>:" wins and everything after the colon, trimmed, is the value.
// A label with nothing after the colon counts as absent. Parsing never
// fails; a reply with no recognizable sections yields an empty Diagnosis.
func ParseDiagnosis(raw string) *model.Diagnosis {
	values := make(map[string]string, len(fields))

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		for _, field := range fields {
			if _, seen := values[field]; seen {
				continue
			}
			rest, ok := cutPrefixFold(line, field+":")
			if !ok {
				continue
			}
			if v := strings.TrimSpace(rest); v != "" {
				values[field] = v
			}
			break
		}
	}

	return &model.Diagnosis{
		Issue:   values["ISSUE"],
		Cause:   values["CAUSE"],
		Fix:     values["FIX"],
		Command: values["COMMAND"],
	}
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding on the prefix.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
