//go:build purego
// +build purego

package consts

// Pure selects the reference compressor everywhere.
const Pure = true
