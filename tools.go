//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: generates the *_mock_test.go files (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: declared as a tool in go.mod for ad-hoc migration commands
