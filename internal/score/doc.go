// Package score aggregates externally supplied per-check audit scores into
// pillar totals and a 0-100 overall score.
//
// The five pillar auditors run outside this module and hand their output in
// as PillarResults. Scoring is a pure transform: a raw pass sums checks
// against fixed pillar budgets, and an optional dynamic pass rescales the
// pillars to a page-type weight profile while preserving each pillar's
// achieved percentage.
package score
