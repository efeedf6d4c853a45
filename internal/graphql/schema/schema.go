// Package schema holds the GraphQL type schema served by the API.
package schema

import (
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var sdl string

const sourceName = "schema.graphql"

// SDL returns the schema definition text.
func SDL() string {
	return sdl
}

// Load parses and validates the embedded schema.
func Load() (*ast.Schema, error) {
	s, err := gqlparser.LoadSchema(&ast.Source{Name: sourceName, Input: sdl})
	if err != nil {
		return nil, fmt.Errorf("load graphql schema: %w", err)
	}
	return s, nil
}

// MustLoad is Load for package initialisation and tests.
func MustLoad() *ast.Schema {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}
