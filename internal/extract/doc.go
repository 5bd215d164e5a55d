// Package extract turns raw HTML into the typed, bounded ExtractedContent
// model: business attributes, competitor mentions, product names,
// structural samples, topics, detected features, and page language.
//
// Every extraction step is an ordered table of regular expressions or a
// single DOM pass with hard caps on result counts and lengths. First-match
// wins in the attribute tables: pattern order encodes priority, not
// specificity, and must be preserved when editing.
//
// Failure containment: each step runs behind a recover wrapper, so a
// pathological input degrades that one field to its empty default instead
// of aborting the extraction. A page-level failure (unparseable or flagged
// as an error page) returns the fully-defaulted content model. Nothing in
// this package returns an error to its caller.
package extract
