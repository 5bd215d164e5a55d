// Package model defines the core data structures used throughout aiready.
//
// This package contains the following main types:
//   - ExtractedContent: The typed content model produced from raw HTML
//   - PillarResults: Per-check scores supplied by the external pillar auditors
//   - ScoringResult: The final 0-100 assessment with breakdown and recommendations
//   - RecommendationTemplate: Authored, immutable fix templates keyed by metric
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (classify, extract, score, recommend, report)
// need to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
