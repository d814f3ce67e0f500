// Package database provides the SQLite run history for sitemanifest.
//
// Every generation run is stored with the artifacts it wrote: file name,
// path, size and SHA3-256 digest. The history lets the CLI list past runs
// and verify that files on disk still match what was generated.
//
// The driver is modernc.org/sqlite, so the binary stays CGO-free and the
// history is a single file under the XDG data directory.
package database
