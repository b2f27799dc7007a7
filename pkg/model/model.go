package model

// Diagnosis is the parsed form of the model's reply. An empty string means
// the model did not produce that section; Command may hold the literal
// "none" when the model decided no command applies.
type Diagnosis struct {
	Issue   string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Cause   string `json:"cause,omitempty" yaml:"cause,omitempty"`
	Fix     string `json:"fix,omitempty" yaml:"fix,omitempty"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}

// Empty reports whether no section at all was recognized in the reply.
func (d *Diagnosis) Empty() bool {
	return d.Issue == "" && d.Cause == "" && d.Fix == "" && d.Command == ""
}

// PodContext is what the cluster gathering step hands to the analyzer:
// a short context line and the raw error/event text for one pod.
type PodContext struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Status    string `json:"status" yaml:"status"`
	ErrorText string `json:"error_text,omitempty" yaml:"error_text,omitempty"`
}

// ContextLine renders the context string embedded in the prompt.
func (p *PodContext) ContextLine() string {
	return "Pod: " + p.Name + ", Status: " + p.Status
}

// Healthy reports whether gathering found nothing worth analyzing.
func (p *PodContext) Healthy() bool {
	return p.ErrorText == ""
}
