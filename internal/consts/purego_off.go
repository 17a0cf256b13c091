//go:build !purego
// +build !purego

package consts

const Pure = false
