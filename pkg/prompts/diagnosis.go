package prompts

import "fmt"

// BuildDiagnosisPrompt renders the fixed instructional prompt sent to every
// backend: role statement, the four labeled sections the model must produce,
// the fix commands it may suggest, then the gathered context and error text.
func BuildDiagnosisPrompt(errorText, contextText string) string {
	return fmt.Sprintf(`You are a Kubernetes expert helping to diagnose a failing pod.

Respond with exactly four labeled sections: ISSUE, CAUSE, FIX and COMMAND.

For COMMAND, suggest one of these if it would help, or "none":
- kubectl logs
- kubectl describe pod
- kubectl delete pod
- kubectl rollout restart
- kubectl edit

Context:
%s

Error output:
%s

Answer in this format and nothing else:
ISSUE: <one-line summary of what is wrong>
CAUSE: <the most likely root cause>
FIX: <what to change or check>
COMMAND: <a single kubectl command, or none>`, contextText, errorText)
}
