// Package repo holds the ent-generated data access client.
// Run `go generate ./...` after changing anything under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . ../schema
