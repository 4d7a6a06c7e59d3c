package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this engine reads.
const SupportedMajor = "v1"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledCatalogSchema compiles the catalog schema once.
func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		// Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Parse decodes and fully validates a JSON catalog: JSON Schema first, then
// the structural rules, then the format version gate.
func Parse(data []byte) (Catalog, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Catalog{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return Catalog{}, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Catalog{}, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	if major := semver.Major("v" + c.Version); major != SupportedMajor {
		return Catalog{}, fmt.Errorf("catalog version %s is not supported (engine reads %s catalogs)",
			c.Version, SupportedMajor)
	}

	if err := Validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
