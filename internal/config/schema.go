// Where: cli/internal/config/schema.go
// What: Schema validation for ledgerbox.yml.
// Why: Catch malformed project files before any docker command runs.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const projectSchemaURL = "ledgerbox.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func validateProjectFile(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(projectSchemaURL, strings.NewReader(projectSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(projectSchemaURL)
	})
	return compiledSchema, schemaErr
}

// projectSchema constrains ledgerbox.yml to the fields the CLI understands.
const projectSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": ["object", "null"],
  "additionalProperties": false,
  "properties": {
    "image": {"type": "string", "minLength": 1},
    "registry_user": {"type": "string", "minLength": 1},
    "service": {"type": "string", "minLength": 1},
    "platforms": {
      "type": "array",
      "items": {"type": "string", "pattern": "^[a-z0-9]+/[a-z0-9_/]+$"}
    }
  }
}`
