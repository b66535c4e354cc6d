// Package cli implements the pqhash command line: hash, manifest, backends and version.
package cli
