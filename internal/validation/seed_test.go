package validation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-portfolio/internal/validation"
)

func TestValidateSeedDocumentAcceptsWellFormedFixture(t *testing.T) {
	raw := []byte(`{
		"hero": {
			"name": "John Doe",
			"published": true,
			"translations": {
				"en": {"profession": "Backend Developer"},
				"ru": {"profession": "Бэкенд-разработчик"}
			}
		},
		"skills": [
			{"name": "Go", "icon": "go", "gradient_from": "#00ADD8", "gradient_to": "#5DC9E2"}
		],
		"stats": [
			{"value": "2+", "translations": {"en": {"label": "Years of experience"}}}
		]
	}`)

	payload, err := validation.ValidateSeedDocument(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if payload["hero"] == nil {
		t.Fatal("expected hero block in decoded payload")
	}
}

func TestValidateSeedDocumentRejectsMissingEnglishTranslation(t *testing.T) {
	raw := []byte(`{
		"stats": [
			{"value": "2+", "translations": {"ru": {"label": "Лет опыта"}}}
		]
	}`)

	_, err := validation.ValidateSeedDocument(raw)
	if !errors.Is(err, validation.ErrFixtureValidation) {
		t.Fatalf("expected ErrFixtureValidation, got %v", err)
	}
	if issues := validation.Issues(err); len(issues) == 0 {
		t.Fatal("expected validation issues")
	}
}

func TestValidateSeedDocumentRejectsBadGradient(t *testing.T) {
	raw := []byte(`{
		"skills": [
			{"name": "Go", "icon": "go", "gradient_from": "blue"}
		]
	}`)

	if _, err := validation.ValidateSeedDocument(raw); !errors.Is(err, validation.ErrFixtureValidation) {
		t.Fatalf("expected ErrFixtureValidation, got %v", err)
	}
}

func TestValidateSeedDocumentRejectsMalformedJSON(t *testing.T) {
	if _, err := validation.ValidateSeedDocument([]byte("{")); !errors.Is(err, validation.ErrFixtureInvalid) {
		t.Fatalf("expected ErrFixtureInvalid, got %v", err)
	}
}
