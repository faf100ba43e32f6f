// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// NewSimpleTypesFile returns a minimal generated types file with one
// standalone union and one property union.
func NewSimpleTypesFile() string {
	return `export type Pet = {
    status?: 'available' | 'sold';
};

export type OrderStatus = 'PENDING' | 'COMPLETED';
`
}

// NewDetailedTypesFile returns a generated types file in the shape emitted by
// @hey-api/openapi-ts: a standalone union, nested objects, an operation type
// with query parameters, array wrappers, doc comments and a multi-line union.
//
// It yields six records, two of which carry the same values.
func NewDetailedTypesFile() string {
	return `// This file is auto-generated by @hey-api/openapi-ts

export type OrderStatus = 'PENDING' | 'COMPLETED' | 'CANCELLED';

export type Pet = {
    id?: number;
    status?: 'available' | 'pending' | 'sold';
    owner?: {
        tier: 'gold' | 'silver';
    };
    kind: 'cat' | 'dog';
};

export type GetV1PetsData = {
    body?: never;
    query?: {
        /**
         * Status values to filter by
         */
        status?: Array<'available' | 'pending' | 'sold'>;
        sort?:
            | 'asc'
            | 'desc';
    };
    url: '/v1/pets';
};

export type GetV1PetsResponses = {
    200: Array<Pet>;
};
`
}

// WriteTempTypes writes content as types.gen.ts in a fresh temporary
// directory and returns the file path.
func WriteTempTypes(t *testing.T, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "types.gen.ts")
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary types file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML marshals doc to YAML in a temporary file and returns its path.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "enumarrays.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}
