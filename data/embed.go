// Package data provides the embedded level pack and utilities for loading it.
package data

import "embed"

// levelFS embeds all level files from the levels directory at build time.
//
//go:embed levels/*.lvl
var levelFS embed.FS
