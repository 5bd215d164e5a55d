// Package main provides the entry point for the aiready CLI.
//
// aiready scores web pages for AI search readiness. It classifies a page,
// extracts its content model, and turns pillar auditor output into a
// 0-100 score with prioritized recommendations.
//
// Usage:
//
//	aiready analyze page.html --pillars results.json
//	aiready analyze - --url https://example.com/ < page.html
//
// See --help for all available options.
package main

// main is the entry point for aiready.
func main() {
	Execute()
}
