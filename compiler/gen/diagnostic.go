package gen

import (
	"context"
	"fmt"
	"log/slog"
)

// Severity is the level of a diagnostic.
type Severity int

// Diagnostic severities.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Level returns the slog level matching the severity.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// A Descriptor identifies a kind of diagnostic.
type Descriptor struct {
	Code     string
	Title    string
	Format   string // fmt format of the message; filled with Diagnostic.Args.
	Severity Severity
}

// Diagnostic descriptors reported by a generation run.
var (
	// DiagDocumentFailed reports a layout document that was skipped because
	// processing it failed. Args: document path, error.
	DiagDocumentFailed = &Descriptor{
		Code:     "MYRA001",
		Title:    "Error generating UI code",
		Format:   "Error processing %s: %s",
		Severity: SeverityWarning,
	}

	// DiagRunStarted reports the resolved configuration. Args: namespace,
	// directory pattern, candidate count.
	DiagRunStarted = &Descriptor{
		Code:     "MYRA002",
		Title:    "Generator executing",
		Format:   "myragen executing. Namespace: %s, Directory: %s, candidate count: %d",
		Severity: SeverityInfo,
	}

	// DiagDocumentsSelected reports the selected documents. Args: count,
	// directory pattern.
	DiagDocumentsSelected = &Descriptor{
		Code:     "MYRA003",
		Title:    "XML files found",
		Format:   "Found %d XML files matching directory '%s'",
		Severity: SeverityInfo,
	}

	// DiagUnitGenerated reports an emitted accessor class. Args: document
	// name, widget count.
	DiagUnitGenerated = &Descriptor{
		Code:     "MYRA004",
		Title:    "Generated UI class",
		Format:   "Generated %sUI with %d widgets",
		Severity: SeverityInfo,
	}

	// DiagNoWidgets reports a document without identified widgets. Args:
	// document file name.
	DiagNoWidgets = &Descriptor{
		Code:     "MYRA005",
		Title:    "No widgets found",
		Format:   "No widgets with Id found in %s",
		Severity: SeverityInfo,
	}

	// DiagUnexpected reports a failure outside of document processing.
	// Args: error.
	DiagUnexpected = &Descriptor{
		Code:     "MYRA999",
		Title:    "Generator exception",
		Format:   "myragen threw an exception: %s",
		Severity: SeverityError,
	}
)

// Diagnostic is one message reported by a generation run.
type Diagnostic struct {
	*Descriptor
	Args []any
	// Err is the error behind a failure diagnostic, if any.
	Err error
}

// Message returns the formatted diagnostic message.
func (d *Diagnostic) Message() string {
	return fmt.Sprintf(d.Format, d.Args...)
}

// String implements fmt.Stringer.
func (d *Diagnostic) String() string {
	return d.Code + " " + d.Severity.String() + ": " + d.Message()
}

// Log writes the diagnostic to l at the level of its severity.
func (d *Diagnostic) Log(l *slog.Logger) {
	l.Log(context.Background(), d.Severity.Level(), d.Message(), "code", d.Code, "title", d.Title)
}
