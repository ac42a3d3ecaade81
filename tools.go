//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: service test doubles (see the go:generate
//   directives in internal/service/*/service_test.go)
// - github.com/pressly/goose/v3/cmd/goose: declared with the go.mod tool
//   directive; `go tool goose -dir migrations/postgres postgres "$DSN" status`
