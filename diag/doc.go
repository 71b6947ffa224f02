// Package diag provides structured diagnostics for reading and analyzing
// a class diagram: severities, stable error codes, immutable issues
// built through a validating builder, and a collector that accumulates
// them in deterministic order.
//
// # Entry point pattern
//
// The reader and analysis entry points follow a consistent pattern:
//
//   - err != nil: failure (I/O, malformed XML the decoder itself rejects,
//     an invalid element construction, or, in strict mode, a skipped
//     relationship or reference recorded as an Error issue)
//   - err == nil and result.OK(): success, possibly with hints — a
//     skipped, unresolvable relationship does not fail the read
//
// # Issue construction
//
//	issue := diag.NewIssue(diag.Warning, diag.W_SKIPPED_RELATIONSHIP, "relationship references unknown class").
//	    WithDetail(diag.DetailKeyTargetID, "c99").
//	    Build()
//
// Direct struct literal construction bypasses validity checks and
// panics when collected.
//
// # Collection
//
//	collector := diag.NewCollector(0) // 0 = unlimited
//	collector.Collect(issue)
//	result := collector.Result()
//	if !result.OK() { ... }
package diag
