// Package model defines the records that describe a delivered website project.
//
// This package contains the following main types:
//   - FileDescriptor: One deliverable file with its kind, description and size estimate
//   - Palette and ColorToken: The light/dark color schemes
//   - Breakpoint: A responsive layout range
//   - FeatureFlag and Improvement: Feature highlights
//   - Project: The single table every generated report is derived from
//
// The records are filled once from the embedded catalog and never mutated.
// Every output format (CSV inventory, delivery summary, console transcripts,
// Markdown and JSON exports) formats the same Project value, so the reports
// cannot drift apart.
package model
