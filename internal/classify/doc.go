// Package classify labels a page with a page type and a business type and
// flags non-content (error/block) pages.
//
// Classification is a two-phase process. First, CollectSignals reduces the
// raw HTML and URL to a small PageSignals value: URL parts, structured-data
// types present, element counts, and a handful of selector probes. Second,
// the detection functions evaluate fixed-priority rule cascades against
// that value, first match wins.
//
// Design decision: Rules are pure predicates over PageSignals rather than
// live DOM queries because:
//  1. Classification logic stays decoupled from the HTML-parsing library
//  2. Each rule is trivially unit-testable with plain data
//  3. One parsing pass serves every rule, instead of re-querying per rule
//
// The cascade ordering is a deliberate precedence, not a scored vote.
// Reordering rules changes classification results; tests document the
// exact order.
package classify
