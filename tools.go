//go:build tools

package tools

// CLI tools used during development. Not compiled into any binary.
//
// - github.com/pressly/goose/v3/cmd/goose: pinned through the go.mod tool
//   directive; run with `go tool goose -dir migrations postgres "$DSN" status`.
// - github.com/matryer/moq: regenerates the *_mock_test.go files from the
//   go:generate lines next to each consumer-side interface.
