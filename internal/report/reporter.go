// Package report collects positioned typelabel diagnostics.
package report

import (
	"fmt"
	"go/token"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/sirkon/typelabel/internal/labelrules"
)

// Reporter collects diagnostics discovered while inspecting label annotations.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    ReportPhase
	RuleCode labelrules.Rule
	Pos      token.Pos
	End      token.Pos
	Message  string
}

// ReportPhase marks the stage where a report was generated.
type ReportPhase int

const (
	reportPhaseInvalid ReportPhase = iota
	ReportDirective                // directive comments parsing
	ReportType                     // type-checked restrictions
	ReportOutput                   // generated files state
)

func (p ReportPhase) String() string {
	switch p {
	case ReportDirective:
		return "directive"
	case ReportType:
		return "type"
	case ReportOutput:
		return "output"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// ReporterPhase binds a Reporter to a fixed phase.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a phase-bound reporter that sets the given phase for all
// reports produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a rule violation spanning [pos, end) under the bound phase.
// An empty message is replaced with the rule description.
func (rp *ReporterPhase) Report(rule labelrules.Rule, message string, pos, end token.Pos) {
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Message:  message,
		Pos:      pos,
		End:      end,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// PrintSummary prints collected reports ordered by position, one per
// "file:line:col: LBLNNN: message" entry. Continuation lines of multi-line
// messages are indented.
func (r *Reporter) PrintSummary(w io.Writer, fset *token.FileSet) error {
	reps := r.Reports()
	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].Pos < reps[j].Pos
	})

	for _, rep := range reps {
		msg := strings.TrimRight(rep.Message, "\n")
		msg = strings.ReplaceAll(msg, "\n", "\n\t")
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n", fset.Position(rep.Pos), rep.RuleCode.Code(), msg); err != nil {
			return err
		}
	}

	return nil
}
