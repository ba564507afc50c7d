package schemas

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-builder/internal/types"
)

// Migration upgrades a decoded document from version From to From+1.
type Migration struct {
	From int
	Name string
	Up   func(doc map[string]any) (map[string]any, error)
}

// migrations is the upgrade chain, ordered by From. It is empty while only
// version 1 exists.
var migrations []Migration

// Migrate brings a decoded document up to types.CurrentSchemaVersion.
// Documents written before versioning existed carry no schemaVersion and are
// treated as version 1.
func Migrate(doc map[string]any) (map[string]any, error) {
	return migrate(doc, migrations, types.CurrentSchemaVersion)
}

func migrate(doc map[string]any, chain []Migration, target int) (map[string]any, error) {
	version, err := documentVersion(doc)
	if err != nil {
		return nil, err
	}
	if version > target {
		return nil, fieldError("schemaVersion", "version %d is newer than supported version %d", version, target)
	}

	for version < target {
		step, ok := findMigration(chain, version)
		if !ok {
			return nil, fieldError("schemaVersion", "no migration from version %d", version)
		}
		next, err := step.Up(doc)
		if err != nil {
			return nil, &ValidationError{Errors: []FieldError{{
				Field:   "schemaVersion",
				Message: fmt.Sprintf("migration %q failed: %v", step.Name, err),
			}}}
		}
		doc = next
		version++
	}

	doc["schemaVersion"] = target
	return doc, nil
}

func documentVersion(doc map[string]any) (int, error) {
	raw, ok := doc["schemaVersion"]
	if !ok || raw == nil {
		return 1, nil
	}
	n, ok := raw.(float64)
	if !ok || n != math.Trunc(n) || n < 1 {
		return 0, fieldError("schemaVersion", "must be a positive integer, got %v", raw)
	}
	return int(n), nil
}

func findMigration(chain []Migration, from int) (Migration, bool) {
	for _, m := range chain {
		if m.From == from {
			return m, true
		}
	}
	return Migration{}, false
}
