// Package catalog holds the project catalog compiled into the binary.
//
// The catalog is a YAML document embedded with go:embed. It is the only
// place where file names, sizes, colors, breakpoints and feature lists are
// written down; every report derives its text from the model.Project it
// decodes to. Changing a value here changes every output consistently.
package catalog
