package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://numberrush/stats.json"

func counter() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0, "maximum": maxCount}
}

func countsOf(keys ...string) map[string]any {
	props := make(map[string]any, len(keys))
	required := make([]any, 0, len(keys))
	for _, k := range keys {
		props[k] = counter()
		required = append(required, k)
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// importSchema describes a complete, well-formed aggregate. Loading is
// lenient; importing someone else's file is not.
var importSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"totalGamesPlayed":   counter(),
		"correctAnswers":     counter(),
		"totalTimePlayed":    map[string]any{"type": "number", "minimum": 0},
		"totalCoins":         counter(),
		"gamesPerDifficulty": countsOf("single", "double", "triple"),
		"gamesPerOperation":  countsOf("addition", "subtraction", "multiplication"),
	},
	"required": []any{
		"totalGamesPlayed", "correctAnswers", "totalTimePlayed",
		"totalCoins", "gamesPerDifficulty", "gamesPerOperation",
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func importValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON document, not Go literals.
		b, err := json.Marshal(importSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// ValidateImport checks raw against the stats schema and the cross-field
// rule that correct answers never exceed games played.
func ValidateImport(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := importValidator()
	if err != nil {
		return fmt.Errorf("compile stats schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	a := Decode(raw)
	if a.CorrectAnswers > a.TotalGamesPlayed {
		return fmt.Errorf("correctAnswers (%d) exceeds totalGamesPlayed (%d)", a.CorrectAnswers, a.TotalGamesPlayed)
	}
	return nil
}
