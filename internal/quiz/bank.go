package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed questions.json
var defaultBankJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadDefault loads the bank embedded in the binary.
func LoadDefault() (*Bank, error) {
	return parseBank(defaultBankJSON)
}

// LoadFile loads a question bank from a JSON file. A missing or malformed
// bank is a configuration error; callers abort startup on failure.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	bank, err := parseBank(data)
	if err != nil {
		return nil, fmt.Errorf("bank file %s: %w", path, err)
	}
	return bank, nil
}

// Load loads the bank at path, or the embedded default bank if path is empty.
func Load(path string) (*Bank, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

func parseBank(data []byte) (*Bank, error) {
	if err := validateBank(data); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if !containsOption(q.Options, q.Answer) {
			return nil, fmt.Errorf("question %q: answer not among options", q.ID)
		}
	}

	return NewBank(questions), nil
}

// validateBank checks raw bank JSON against BankSchema.
func validateBank(data []byte) error {
	schema, err := bankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// bankSchema compiles BankSchema once and caches the result.
func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw bytes.
		defBytes, err := json.Marshal(BankSchema)
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
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
