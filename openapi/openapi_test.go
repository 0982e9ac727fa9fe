package openapi

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	doc := NewDocument("servekit demo", "1.2.3")
	doc.AddOperation("/", http.MethodGet, Operation{
		Summary:     "Version of the server",
		OperationID: "appVersion",
		Responses: map[string]Response{
			"200": {
				Description: "Version of the server",
				Content: map[string]MediaType{
					"application/json": {
						Schema: &Schema{
							Type: "object",
							Properties: map[string]*Schema{
								"version": {Type: "string", Example: "1.2.3"},
							},
							Required: []string{"version"},
						},
					},
				},
			},
			"500": {
				Description: "Failed to read the server version",
				Content: map[string]MediaType{
					"text/plain": {Schema: &Schema{Type: "string"}},
				},
			},
		},
	})
	return doc
}

func TestExport_RoundTrip(t *testing.T) {
	doc := sampleDocument()
	path := filepath.Join(t.TempDir(), "openapi.json")

	require.NoError(t, Export(doc, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var reparsed Document
	require.NoError(t, json.Unmarshal(raw, &reparsed))
	assert.Equal(t, *doc, reparsed)
}

func TestExport_PrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")

	require.NoError(t, Export(sampleDocument(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.True(t, strings.HasPrefix(content, "{\n"), "expected indented multi-line JSON")
	assert.Contains(t, content, "\n  \"openapi\": \"3.1.0\"")
}

func TestExport_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content of a much longer previous export"), 0o644))

	require.NoError(t, Export(sampleDocument(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "stale content")

	var reparsed Document
	assert.NoError(t, json.Unmarshal(raw, &reparsed))
}

func TestExport_WriteFailure(t *testing.T) {
	err := Export(sampleDocument(), filepath.Join(t.TempDir(), "missing", "dir", "openapi.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteSpec)
	assert.NotErrorIs(t, err, ErrEncodeSpec)
}

func TestExport_EncodeFailure(t *testing.T) {
	doc := sampleDocument()
	// функция не сериализуется в JSON
	doc.Paths["/"][http.MethodGet] = Operation{
		Responses: map[string]Response{
			"200": {Description: "bad", Content: map[string]MediaType{
				"application/json": {Schema: &Schema{Example: func() {}}},
			}},
		},
	}

	err := Export(doc, filepath.Join(t.TempDir(), "openapi.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncodeSpec)
}
