//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These tools are installed globally via `go install` and are not tracked in go.mod
// since they are development tools, not runtime dependencies.
package tools

// Development tools (install via `go install`):
//
// mockgen - Mock generation for go.uber.org/mock
//   Install: go install go.uber.org/mock/mockgen@v0.6.0
//   Version: v0.6.0
//   Used by: internal/mocks (see generate.go)
//
// golangci-lint - Linting
//   Install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest
