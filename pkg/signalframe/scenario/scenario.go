// Package scenario runs scripted navigation sequences, written in YAML,
// against a router. The simulator uses it to replay device flows.
package scenario

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/screens"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

// Step operations.
const (
	OpOpen          = "open"
	OpOpenWithParam = "open_with_param"
	OpClose         = "close"
	OpCloseCurrent  = "close_current"
	OpCloseTo       = "close_to"
	OpEmit          = "emit"
	OpLock          = "lock"
	OpUnlock        = "unlock"
	OpDebug         = "debug"
)

// Scenario is a named list of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation and the state expected after it.
type Step struct {
	Op     string `yaml:"op"`
	View   string `yaml:"view,omitempty"`
	Signal string `yaml:"signal,omitempty"`

	// Payload sources, at most one per step.
	Text   string  `yaml:"text,omitempty"`
	Hex    string  `yaml:"hex,omitempty"`
	Tag    string  `yaml:"tag,omitempty"`
	Verify *Verify `yaml:"verify,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`
}

// Verify builds a signal.VerifyResult payload.
type Verify struct {
	Signal string `yaml:"signal"`
	Errors uint16 `yaml:"errors"`
}

// Expect checks the router after a step. Empty fields are not checked.
type Expect struct {
	Top    string `yaml:"top,omitempty"`
	Depth  *int   `yaml:"depth,omitempty"`
	Locked *bool  `yaml:"locked,omitempty"`
	// Error is a substring the step's error must contain. Without it any
	// step error fails the scenario.
	Error string `yaml:"error,omitempty"`
}

// Parse decodes a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("scenario: no steps")
	}
	return &sc, nil
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// StepError reports the step a scenario failed at.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner applies steps to a router using the views of a screen set.
type Runner struct {
	Screens *screens.Set
	Out     io.Writer // Receives debug dumps; nil discards them
}

// Run applies every step in order and stops at the first failure.
func (rn *Runner) Run(r *router.Router, sc *Scenario) error {
	for i, st := range sc.Steps {
		if err := rn.Step(r, st); err != nil {
			return &StepError{Index: i, Op: st.Op, Err: err}
		}
	}
	return nil
}

// Step applies one step and checks its expectations.
func (rn *Runner) Step(r *router.Router, st Step) error {
	err := rn.apply(r, st)

	var exp Expect
	if st.Expect != nil {
		exp = *st.Expect
	}
	switch {
	case exp.Error != "" && err == nil:
		return fmt.Errorf("expected error containing %q", exp.Error)
	case exp.Error != "" && !strings.Contains(err.Error(), exp.Error):
		return fmt.Errorf("expected error containing %q, got %w", exp.Error, err)
	case exp.Error == "" && err != nil:
		return err
	}

	if exp.Top != "" {
		got := "none"
		if top := r.Top(); top != nil {
			got = views.Name(top.ID)
		}
		if got != exp.Top {
			return fmt.Errorf("top is %s, expected %s", got, exp.Top)
		}
	}
	if exp.Depth != nil && r.Stack().Len() != *exp.Depth {
		return fmt.Errorf("depth is %d, expected %d", r.Stack().Len(), *exp.Depth)
	}
	if exp.Locked != nil && rn.Screens.Lock.IsTop() != *exp.Locked {
		return fmt.Errorf("lock screen shown is %v, expected %v", rn.Screens.Lock.IsTop(), *exp.Locked)
	}
	return nil
}

func (rn *Runner) apply(r *router.Router, st Step) error {
	switch st.Op {
	case OpOpen, OpOpenWithParam, OpClose, OpCloseTo:
		v, err := rn.view(st.View)
		if err != nil {
			return err
		}
		switch st.Op {
		case OpOpen:
			return r.OpenView(v)
		case OpOpenWithParam:
			p, err := st.payload()
			if err != nil {
				return err
			}
			return r.OpenViewWithParam(v, p)
		case OpClose:
			return r.CloseView(v)
		default:
			return r.CloseToTarget(v)
		}
	case OpCloseCurrent:
		return r.CloseCurrent()
	case OpEmit:
		id, ok := signal.Lookup(st.Signal)
		if !ok {
			return fmt.Errorf("unknown signal %q", st.Signal)
		}
		p, err := st.payload()
		if err != nil {
			return err
		}
		return r.EmitSignal(id, p)
	case OpLock:
		purpose := signal.VerifyPin
		if st.Tag != "" {
			id, ok := signal.Lookup(st.Tag)
			if !ok {
				return fmt.Errorf("unknown signal %q", st.Tag)
			}
			purpose = id
		}
		rn.Screens.Lock.TurnOn(purpose)
		return nil
	case OpUnlock:
		return rn.Screens.Lock.TurnOff()
	case OpDebug:
		if rn.Out != nil {
			Dump(rn.Out, r)
		}
		r.Diagnostics().Dump(r.Logger())
		return nil
	}
	return fmt.Errorf("unknown op %q", st.Op)
}

func (rn *Runner) view(name string) (*router.View, error) {
	id, ok := views.ParseID(name)
	if !ok {
		return nil, fmt.Errorf("unknown view %q", name)
	}
	v, ok := rn.Screens.Registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("view %q not registered", name)
	}
	return v, nil
}

func (st Step) payload() ([]byte, error) {
	switch {
	case st.Verify != nil:
		id, ok := signal.Lookup(st.Verify.Signal)
		if !ok {
			return nil, fmt.Errorf("unknown signal %q", st.Verify.Signal)
		}
		return signal.VerifyResult{Signal: id, ErrorCount: st.Verify.Errors}.Encode(), nil
	case st.Tag != "":
		id, ok := signal.Lookup(st.Tag)
		if !ok {
			return nil, fmt.Errorf("unknown signal %q", st.Tag)
		}
		return signal.Tag(id), nil
	case st.Hex != "":
		return hex.DecodeString(st.Hex)
	case st.Text != "":
		return []byte(st.Text), nil
	}
	return nil, nil
}

// Dump writes the stack, top first, and the diagnostics ring.
func Dump(w io.Writer, r *router.Router) {
	fmt.Fprintf(w, "stack (%d):\n", r.Stack().Len())
	for i, v := range r.Stack().Views() {
		marker := " "
		if v.IsActive() {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %d %s\n", marker, i, views.Name(v.ID))
	}
	fmt.Fprintf(w, "history (%d of %d):\n", r.Diagnostics().Len(), r.Diagnostics().Total())
	for _, s := range r.Diagnostics().Entries() {
		fmt.Fprintf(w, "  #%d %s from %s depth %d\n", s.Seq, s.Name, views.Name(s.Previous), s.Depth)
	}
}
