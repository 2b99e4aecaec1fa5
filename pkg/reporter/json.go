package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/repolint/pkg/runner"
)

// jsonSchemaVersion identifies the layout of JSONOutput.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version     string      `json:"version"`
	Suite       string      `json:"suite"`
	Root        string      `json:"root"`
	Passed      bool        `json:"passed"`
	RootMissing bool        `json:"rootMissing"`
	Errors      []JSONError `json:"errors"`
	Summary     JSONSummary `json:"summary"`
}

// JSONError represents a single validation error.
type JSONError struct {
	RuleID   string `json:"ruleId,omitempty"`
	RuleName string `json:"ruleName,omitempty"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Text     string `json:"text"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesChecked    int `json:"filesChecked"`
	FilesUnreadable int `json:"filesUnreadable"`
	FilesWithErrors int `json:"filesWithErrors"`
	PackagesChecked int `json:"packagesChecked"`
	TotalErrors     int `json:"totalErrors"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalErrors, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Passed:  true,
		Errors:  make([]JSONError, 0),
	}

	if result == nil {
		return output
	}

	output.Suite = string(result.Suite)
	output.Root = result.Root
	output.RootMissing = result.RootMissing
	output.Passed = result.Passed()

	for _, e := range result.Errors {
		output.Errors = append(output.Errors, JSONError{
			RuleID:   e.RuleID,
			RuleName: e.RuleName,
			Subject:  e.Subject,
			Message:  e.Message,
			Text:     e.String(),
		})
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesChecked:    result.Stats.FilesChecked,
		FilesUnreadable: result.Stats.FilesUnreadable,
		FilesWithErrors: result.Stats.FilesWithErrors,
		PackagesChecked: result.Stats.PackagesChecked,
		TotalErrors:     len(result.Errors),
	}

	return output
}
