package diag

import "fmt"

// IssueBuilder provides fluent construction of [Issue] values.
//
// IssueBuilder is the only valid construction path for Issue values in
// production code.
//
// Example:
//
//	issue := diag.NewIssue(diag.Error, diag.E_INVALID_VALUE, `class requires a non-empty name`).
//	    WithSourceName("diagram.xml").
//	    WithHint("set the name attribute").
//	    Build()
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue with required fields.
//
// NewIssue panics if severity is out of range, code is zero, or message
// is empty — these catch programmer errors at construction time.
func NewIssue(severity Severity, code Code, message string) *IssueBuilder {
	if severity > Hint {
		panic(fmt.Sprintf("diag.NewIssue: invalid severity %d (must be 0-%d)", severity, Hint))
	}
	if code.IsZero() {
		panic("diag.NewIssue: zero code")
	}
	if message == "" {
		panic("diag.NewIssue: empty message")
	}
	return &IssueBuilder{issue: Issue{severity: severity, code: code, message: message}}
}

// FromIssue creates an IssueBuilder initialized from an existing,
// already-valid issue, for augmenting it with additional details.
func FromIssue(issue Issue) *IssueBuilder {
	if issue.IsZero() {
		panic("diag.FromIssue: zero-value Issue")
	}
	if !issue.IsValid() {
		panic(fmt.Sprintf("diag.FromIssue: invalid Issue (code=%s)", issue.Code()))
	}
	b := &IssueBuilder{issue: Issue{
		severity:   issue.severity,
		code:       issue.code,
		message:    issue.message,
		hint:       issue.hint,
		sourceName: issue.sourceName,
	}}
	if len(issue.details) > 0 {
		b.issue.details = make([]Detail, len(issue.details))
		copy(b.issue.details, issue.details)
	}
	return b
}

// WithSourceName sets the source document label.
func (b *IssueBuilder) WithSourceName(name string) *IssueBuilder {
	b.issue.sourceName = name
	return b
}

// WithHint sets the resolution suggestion.
func (b *IssueBuilder) WithHint(hint string) *IssueBuilder {
	b.issue.hint = hint
	return b
}

// WithDetail adds a single key-value detail.
func (b *IssueBuilder) WithDetail(key, value string) *IssueBuilder {
	b.issue.details = append(b.issue.details, Detail{Key: key, Value: value})
	return b
}

// WithDetails adds key-value context.
func (b *IssueBuilder) WithDetails(details ...Detail) *IssueBuilder {
	b.issue.details = append(b.issue.details, details...)
	return b
}

// Build returns the constructed issue.
func (b *IssueBuilder) Build() Issue {
	result := b.issue
	if len(b.issue.details) > 0 {
		result.details = make([]Detail, len(b.issue.details))
		copy(result.details, b.issue.details)
	}
	return result
}
