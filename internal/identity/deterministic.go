package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// LocaleUUID derives the registry identifier for a locale code.
func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("go-portfolio:locale:" + strings.ToLower(strings.TrimSpace(localeCode)))
}

// HeroUUID is the identifier of the singleton hero record.
func HeroUUID() uuid.UUID {
	return UUID("go-portfolio:hero:default")
}

// AboutUUID is the identifier of the singleton about record.
func AboutUUID() uuid.UUID {
	return UUID("go-portfolio:about:default")
}

// ProjectUUID derives a stable identifier for seeded/imported projects.
func ProjectUUID(slug string) uuid.UUID {
	return UUID("go-portfolio:project:" + strings.ToLower(strings.TrimSpace(slug)))
}

// SkillUUID derives a stable identifier for seeded skills.
func SkillUUID(name string) uuid.UUID {
	return UUID("go-portfolio:skill:" + strings.ToLower(strings.TrimSpace(name)))
}

// StatUUID derives a stable identifier for seeded stats.
func StatUUID(value string) uuid.UUID {
	return UUID("go-portfolio:stat:" + strings.ToLower(strings.TrimSpace(value)))
}
