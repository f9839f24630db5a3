package importers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/bookscollector/internal/collector"
)

// ErrUnsupportedFormat is returned for catalog files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// catalogDocument is the top-level shape of a catalog file.
type catalogDocument struct {
	Books []RawBook `json:"books" yaml:"books"`
}

// JSONConverter decodes a JSON catalog document.
type JSONConverter struct {
	data []byte
}

// NewJSONConverter creates a converter for a JSON catalog document.
func NewJSONConverter(data []byte) *JSONConverter {
	return &JSONConverter{data: data}
}

// Convert decodes the document. Unknown fields are rejected.
func (c *JSONConverter) Convert() ([]RawBook, error) {
	var doc catalogDocument
	dec := json.NewDecoder(bytes.NewReader(c.data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json catalog: %w", err)
	}
	return doc.Books, nil
}

// YAMLConverter decodes a YAML catalog document.
type YAMLConverter struct {
	data []byte
}

// NewYAMLConverter creates a converter for a YAML catalog document.
func NewYAMLConverter(data []byte) *YAMLConverter {
	return &YAMLConverter{data: data}
}

// Convert decodes the document. Unknown fields are rejected.
func (c *YAMLConverter) Convert() ([]RawBook, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(bytes.NewReader(c.data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml catalog: %w", err)
	}
	return doc.Books, nil
}

// Compile-time checks
var (
	_ Converter = (*JSONConverter)(nil)
	_ Converter = (*YAMLConverter)(nil)
)

// NewConverterForFile picks a converter by file extension.
func NewConverterForFile(path string, data []byte) (Converter, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return NewJSONConverter(data), nil
	case ".yaml", ".yml":
		return NewYAMLConverter(data), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadCatalog reads a catalog file and imports it into c.
func LoadCatalog(path string, c *collector.BooksCollector, verbose bool) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read catalog: %w", err)
	}

	converter, err := NewConverterForFile(path, data)
	if err != nil {
		return ImportResult{}, err
	}

	return NewPipeline(c, verbose).Import(converter)
}
