package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/kubecare/kubectl-diagnose/pkg/model"
)

// Formatter renders a diagnosis to a writer. Colors are carried here
// explicitly rather than as package globals so tests (and json/yaml mode)
// are deterministic.
type Formatter struct {
	out io.Writer

	header  *color.Color
	command *color.Color
	dim     *color.Color
}

func New(out io.Writer) *Formatter {
	return &Formatter{
		out:     out,
		header:  color.New(color.FgCyan, color.Bold),
		command: color.New(color.FgGreen),
		dim:     color.New(color.FgHiBlack),
	}
}

// Display renders the diagnosis in the requested format (human, json, yaml).
func (f *Formatter) Display(d *model.Diagnosis, format string) error {
	switch format {
	case "json":
		return f.displayJSON(d)
	case "yaml":
		return f.displayYAML(d)
	case "human":
		fallthrough
	default:
		f.displayHuman(d)
	}
	return nil
}

func (f *Formatter) displayJSON(d *model.Diagnosis) error {
	output, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(f.out, string(output))
	return nil
}

func (f *Formatter) displayYAML(d *model.Diagnosis) error {
	output, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	fmt.Fprint(f.out, string(output))
	return nil
}

func (f *Formatter) displayHuman(d *model.Diagnosis) {
	fmt.Fprintln(f.out)

	if d.Empty() {
		f.dim.Fprintln(f.out, "The model reply contained no recognizable sections.")
		return
	}

	f.section(d.Issue, "🔍 ISSUE")
	f.section(d.Cause, "💡 CAUSE")
	f.section(d.Fix, "🔧 FIX")

	if cmd := d.Command; cmd != "" && !strings.EqualFold(cmd, "none") {
		f.header.Fprintln(f.out, "🚀 SUGGESTED COMMAND")
		fmt.Fprintf(f.out, "   %s\n\n", f.command.Sprint(cmd))
	}
}

func (f *Formatter) section(value, title string) {
	if value == "" {
		return
	}
	f.header.Fprintln(f.out, title)
	fmt.Fprintf(f.out, "   %s\n\n", value)
}

// DisplayPodState prints the gathered pod context before (or instead of)
// the AI diagnosis, so the command is useful even with no backend at all.
func (f *Formatter) DisplayPodState(pc *model.PodContext) {
	fmt.Fprintln(f.out)
	f.header.Fprintln(f.out, "📦 POD STATE")
	fmt.Fprintf(f.out, "   %s/%s: %s\n", pc.Namespace, pc.Name, pc.Status)
	if pc.ErrorText != "" {
		for _, line := range strings.Split(pc.ErrorText, "\n") {
			fmt.Fprintf(f.out, "   %s\n", f.dim.Sprint(line))
		}
	}
	fmt.Fprintln(f.out)
}
