// Package config provides configuration structures and utilities for sopa.
// It holds the board and generator settings collected from CLI flags, the
// optional .sopa preset file, and the XDG locations used for history data.
package config
