package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrFixtureInvalid    = errors.New("seed fixture invalid")
	ErrFixtureValidation = errors.New("seed fixture validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string `json:"location,omitempty"`
	Message  string `json:"message"`
}

// PayloadValidationError surfaces validation issues with location context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrFixtureValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrFixtureValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// seedSchema constrains the structure of seed fixture files: singleton hero
// and about blocks plus project, skill, and stat collections, with localized
// maps keyed by locale code.
const seedSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "hero": {
      "type": "object",
      "required": ["name", "translations"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "resume_url": {"type": "string"},
        "published": {"type": "boolean"},
        "translations": {"$ref": "#/$defs/translationMap"}
      }
    },
    "about": {
      "type": "object",
      "required": ["translations"],
      "properties": {
        "image_url": {"type": "string"},
        "published": {"type": "boolean"},
        "translations": {"$ref": "#/$defs/translationMap"}
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["slug", "translations"],
        "properties": {
          "slug": {"type": "string", "pattern": "^[a-z0-9]+(?:-[a-z0-9]+)*$"},
          "image_url": {"type": "string"},
          "live_url": {"type": "string"},
          "repo_url": {"type": "string"},
          "tech": {"type": "array", "items": {"type": "string"}},
          "display_order": {"type": "integer", "minimum": 0},
          "published": {"type": "boolean"},
          "translations": {"$ref": "#/$defs/translationMap"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "icon"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "icon": {"type": "string", "minLength": 1},
          "gradient_from": {"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"},
          "gradient_to": {"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"},
          "display_order": {"type": "integer", "minimum": 0},
          "published": {"type": "boolean"}
        }
      }
    },
    "stats": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["value", "translations"],
        "properties": {
          "value": {"type": "string", "minLength": 1},
          "display_order": {"type": "integer", "minimum": 0},
          "published": {"type": "boolean"},
          "translations": {"$ref": "#/$defs/translationMap"}
        }
      }
    }
  },
  "$defs": {
    "translationMap": {
      "type": "object",
      "required": ["en"],
      "properties": {
        "en": {"type": "object"},
        "ru": {"type": "object"},
        "uz": {"type": "object"}
      },
      "additionalProperties": false
    }
  }
}`

// ValidateSeedFixture validates a decoded seed fixture against the fixture
// schema.
func ValidateSeedFixture(payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	compiled, err := compileSeedSchema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFixtureInvalid, err)
	}
	if err := compiled.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// ValidateSeedDocument decodes raw JSON and validates it in one step.
func ValidateSeedDocument(raw []byte) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureInvalid, err)
	}
	if err := ValidateSeedFixture(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func compileSeedSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("seed.json", bytes.NewReader([]byte(seedSchema))); err != nil {
		return nil, err
	}
	return compiler.Compile("seed.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
