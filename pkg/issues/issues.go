// Package issues collects errors and warnings raised during a data-model
// import without aborting on the first problem.
package issues

import (
	"errors"
	"fmt"
	"log/slog"
)

// Severity classifies an issue.
type Severity string

// Issue severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single problem encountered during an import.
type Issue struct {
	// Severity determines whether the issue aborts the import.
	Severity Severity

	// Resource identifies the resource the issue relates to, if any.
	Resource string

	// Feature names the resource feature involved (e.g. "name", "implements").
	Feature string

	// Message is the human-readable description.
	Message string
}

// Error implements the error interface for error-severity issues.
func (i Issue) Error() string {
	if i.Resource == "" {
		return i.Message
	}

	if i.Feature == "" {
		return fmt.Sprintf("%s: %s", i.Resource, i.Message)
	}

	return fmt.Sprintf("%s (%s): %s", i.Resource, i.Feature, i.Message)
}

// NewValueError creates an error issue for an invalid or unparsable value.
func NewValueError(format string, args ...any) Issue {
	return Issue{
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewFileReadError creates an error issue for an unreadable source file.
func NewFileReadError(path string, cause error) Issue {
	return Issue{
		Severity: SeverityError,
		Resource: path,
		Message:  fmt.Sprintf("failed to read file: %v", cause),
	}
}

// NewRetrievalWarning creates a warning for a resource that could not be
// fully resolved from the source graph.
func NewRetrievalWarning(resource, feature, reason string) Issue {
	return Issue{
		Severity: SeverityWarning,
		Resource: resource,
		Feature:  feature,
		Message:  reason,
	}
}

// NewRedefinedWarning creates a warning for a resource feature defined more
// than once with conflicting values. The first definition wins.
func NewRedefinedWarning(resourceType, resource, feature, current, proposed string) Issue {
	return Issue{
		Severity: SeverityWarning,
		Resource: resource,
		Feature:  feature,
		Message: fmt.Sprintf(
			"%s %s redefined: keeping %q, ignoring %q", resourceType, feature, current, proposed,
		),
	}
}

// List accumulates issues in insertion order.
type List struct {
	// Title labels the list in log output.
	Title string

	items []Issue
}

// NewList creates an issue list with the given title.
func NewList(title string) *List {
	return &List{Title: title}
}

// Append adds issues to the list.
func (l *List) Append(items ...Issue) {
	l.items = append(l.items, items...)
}

// All returns all issues in insertion order.
func (l *List) All() []Issue {
	out := make([]Issue, len(l.items))
	copy(out, l.items)

	return out
}

// Len returns the number of collected issues.
func (l *List) Len() int {
	return len(l.items)
}

// HasErrors reports whether any error-severity issue was collected.
func (l *List) HasErrors() bool {
	for _, issue := range l.items {
		if issue.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Errors joins all error-severity issues into a single error.
// Returns nil when no errors were collected.
func (l *List) Errors() error {
	errs := make([]error, 0, len(l.items))

	for _, issue := range l.items {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}

	return errors.Join(errs...)
}

// Warnings returns all warning-severity issues in insertion order.
func (l *List) Warnings() []Issue {
	warnings := make([]Issue, 0, len(l.items))

	for _, issue := range l.items {
		if issue.Severity == SeverityWarning {
			warnings = append(warnings, issue)
		}
	}

	return warnings
}

// Log emits all collected warnings through the logger. Errors are not
// logged here; they are returned from the import instead.
func (l *List) Log(logger *slog.Logger) {
	if logger == nil {
		return
	}

	for _, warning := range l.Warnings() {
		logger.Warn(warning.Message,
			slog.String("list", l.Title),
			slog.String("resource", warning.Resource),
			slog.String("feature", warning.Feature),
		)
	}
}
