package output

import "fmt"

// Kind identifies the filesystem step an Action describes
type Kind string

const (
	KindMkdir    Kind = "mkdir"
	KindBackup   Kind = "backup"
	KindUnlink   Kind = "unlink"
	KindLink     Kind = "link"
	KindGenerate Kind = "generate"
	KindClone    Kind = "clone"
	KindPull     Kind = "pull"
)

// DryRunPrefix marks actions that were only previewed
const DryRunPrefix = "Dry-run: "

// Action is one filesystem step, performed or previewed.
//
// Source and Destination depend on Kind:
//   - mkdir: Destination is the directory
//   - backup: Source is the original path, Destination the backup path
//   - unlink: Destination is the removed link
//   - link: Source is the link target, Destination the link itself
//   - generate: Source is the template, Destination the generated file
//   - clone: Source is the repository URL, Destination the checkout
//   - pull: Destination is the checkout
type Action struct {
	Kind        Kind   `json:"kind" yaml:"kind"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string `json:"destination" yaml:"destination"`
	DryRun      bool   `json:"dry_run" yaml:"dry_run"`
}

// Verb is the human word for the action kind
func (a Action) Verb() string {
	switch a.Kind {
	case KindMkdir:
		return "create directory"
	case KindBackup:
		return "rename"
	case KindUnlink:
		return "remove link"
	default:
		return string(a.Kind)
	}
}

// Object is the part of the description that follows the verb
func (a Action) Object() string {
	switch a.Kind {
	case KindBackup, KindLink, KindClone:
		return fmt.Sprintf("%s to %s", a.Source, a.Destination)
	case KindGenerate:
		return fmt.Sprintf("%s from %s", a.Destination, a.Source)
	default:
		return a.Destination
	}
}

// String renders the action as a single unstyled line
func (a Action) String() string {
	line := a.Verb() + " " + a.Object()
	if a.DryRun {
		return DryRunPrefix + line
	}
	return line
}

// Reporter receives actions as they are performed or previewed
type Reporter interface {
	Report(Action)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(Action)

// Report calls f(a)
func (f ReporterFunc) Report(a Action) { f(a) }

// Discard drops every action
var Discard Reporter = ReporterFunc(func(Action) {})

type tee []Reporter

func (t tee) Report(a Action) {
	for _, r := range t {
		r.Report(a)
	}
}

// Tee forwards each action to all reporters in order. Nil reporters are skipped.
func Tee(reporters ...Reporter) Reporter {
	var out tee
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Recorder keeps every reported action in memory
type Recorder struct {
	Actions []Action
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report appends the action
func (r *Recorder) Report(a Action) {
	r.Actions = append(r.Actions, a)
}

// Count returns how many recorded actions have the given kind
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Lines returns the unstyled description of each recorded action
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		lines[i] = a.String()
	}
	return lines
}
