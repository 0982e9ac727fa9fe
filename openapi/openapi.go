// Package openapi holds a minimal OpenAPI 3 document model and an exporter
// that writes it to disk as pretty-printed JSON.
package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Export failure kinds, matchable with [errors.Is]. A serialization failure
// means the document itself could not be rendered; a write failure means the
// target path could not be created or written.
var (
	ErrEncodeSpec = errors.New("encoding OpenAPI spec")
	ErrWriteSpec  = errors.New("writing OpenAPI spec file")
)

// Document is the top-level OpenAPI 3 document.
type Document struct {
	OpenAPI string              `json:"openapi"`
	Info    Info                `json:"info"`
	Paths   map[string]PathItem `json:"paths"`
}

// Info holds API metadata.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// PathItem maps lower-case HTTP methods to operations.
type PathItem map[string]Operation

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	OperationID string              `json:"operationId,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
	Deprecated  bool                `json:"deprecated,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

// RequestBody describes the request body.
type RequestBody struct {
	Required bool                 `json:"required"`
	Content  map[string]MediaType `json:"content"`
}

// MediaType is a media type object with an optional schema.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Response describes a single response.
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// Schema is a (deliberately small) JSON schema object.
type Schema struct {
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Example    any                `json:"example,omitempty"`
}

// NewDocument returns an empty OpenAPI 3.1 document with the given metadata.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:   title,
			Version: version,
		},
		Paths: make(map[string]PathItem),
	}
}

// AddOperation registers op under the given path and HTTP method,
// creating the path item on first use. The method is stored as given;
// OpenAPI expects it lower-case.
func (d *Document) AddOperation(path, method string, op Operation) {
	if d.Paths == nil {
		d.Paths = make(map[string]PathItem)
	}
	if d.Paths[path] == nil {
		d.Paths[path] = make(PathItem)
	}
	d.Paths[path][method] = op
}

// Export serializes the document to pretty-printed JSON and writes it to
// path, fully overwriting any existing file.
//
// A document that cannot be rendered fails with ErrEncodeSpec in the chain;
// a path that cannot be created or written fails with ErrWriteSpec.
func Export(doc *Document, path string) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeSpec, err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteSpec, err)
	}

	return nil
}
