package diag

import (
	"cmp"
	"slices"
	"sync"
)

// Result is an immutable, sorted snapshot of the issues a [Collector]
// accumulated.
type Result struct {
	issues     []Issue
	fatalCount int
	errorCount int
	limitHit   bool
}

// Issues returns a copy of the result's issues, sorted by severity, then
// source name, then code, then message.
func (r Result) Issues() []Issue {
	cp := make([]Issue, len(r.issues))
	copy(cp, r.issues)
	return cp
}

// OK reports whether the result contains no Fatal or Error issue.
func (r Result) OK() bool { return r.fatalCount == 0 && r.errorCount == 0 }

// HasFatal reports whether the result contains a Fatal issue.
func (r Result) HasFatal() bool { return r.fatalCount > 0 }

// HasErrors reports whether the result contains a Fatal or Error issue.
func (r Result) HasErrors() bool { return r.fatalCount > 0 || r.errorCount > 0 }

// Len returns the total number of issues in the result.
func (r Result) Len() int { return len(r.issues) }

// LimitReached reports whether the collector that produced this result
// stopped early because it hit its issue limit.
func (r Result) LimitReached() bool { return r.limitHit }

// Collector accumulates diagnostic issues and produces a sorted,
// immutable [Result]. A Collector is safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	issues   []Issue
	limit    int
	limitHit bool
}

// NewCollector constructs a Collector that stops accepting new issues
// once limit have been collected. A limit of 0 means unlimited.
func NewCollector(limit int) *Collector {
	return &Collector{limit: limit}
}

// NewCollectorUnlimited constructs a Collector with no issue limit.
func NewCollectorUnlimited() *Collector {
	return NewCollector(0)
}

// Collect adds issue to the collector. Collect panics if issue is not
// [Issue.IsValid] — issues must be built via [IssueBuilder], which
// guarantees validity.
func (c *Collector) Collect(issue Issue) {
	if !issue.IsValid() {
		panic("diag.Collector.Collect: invalid issue (construct via IssueBuilder)")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.limit > 0 && len(c.issues) >= c.limit {
		c.limitHit = true
		return
	}
	c.issues = append(c.issues, issue.Clone())
}

// CollectAll adds each issue in issues, respecting the collector's limit.
func (c *Collector) CollectAll(issues []Issue) {
	for _, issue := range issues {
		c.Collect(issue)
	}
}

// HasFatal reports whether any collected issue is Fatal.
func (c *Collector) HasFatal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, i := range c.issues {
		if i.Severity() == Fatal {
			return true
		}
	}
	return false
}

// HasErrors reports whether any collected issue is Fatal or Error.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, i := range c.issues {
		if i.Severity().IsFailure() {
			return true
		}
	}
	return false
}

// OK reports whether no collected issue is Fatal or Error.
func (c *Collector) OK() bool { return !c.HasErrors() }

// Len returns the number of issues collected so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.issues)
}

// LimitReached reports whether the collector has dropped an issue
// because its limit was reached.
func (c *Collector) LimitReached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limitHit
}

// Result returns an immutable, sorted snapshot of the collected issues.
func (c *Collector) Result() Result {
	c.mu.Lock()
	issues := make([]Issue, len(c.issues))
	copy(issues, c.issues)
	limitHit := c.limitHit
	c.mu.Unlock()

	slices.SortFunc(issues, compareIssues)

	res := Result{issues: issues, limitHit: limitHit}
	for _, i := range issues {
		switch i.Severity() {
		case Fatal:
			res.fatalCount++
		case Error:
			res.errorCount++
		}
	}
	return res
}

func compareIssues(a, b Issue) int {
	if c := cmp.Compare(a.Severity(), b.Severity()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.SourceName(), b.SourceName()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Code().String(), b.Code().String()); c != 0 {
		return c
	}
	return cmp.Compare(a.Message(), b.Message())
}
