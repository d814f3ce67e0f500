// Package config provides configuration structures and utilities for
// sitemanifest. It defines where artifacts are written, which optional
// exports are produced and where generation history is kept.
package config
