// Package main provides the entry point for the sitemanifest CLI.
//
// sitemanifest writes the delivery documents of the portfolio website: the
// CSV file inventory and the plain-text delivery summary.
//
// Usage:
//
//	sitemanifest generate
//	sitemanifest generate -o dist --markdown --json
//	sitemanifest history --verify
//
// See --help for all available options.
package main

// main is the entry point for sitemanifest.
func main() {
	Execute()
}
