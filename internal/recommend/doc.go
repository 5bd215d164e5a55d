// Package recommend turns failing audit checks into a ranked list of
// concrete fixes.
//
// Each metric has one authored template. Generation clones the template,
// applies page-type tuning (priority boosts, skip lists, custom messages),
// and personalizes the text and example from the page's extracted content.
// Personalization is best-effort: any failure falls back to the static
// template so the fix list is always complete.
package recommend
