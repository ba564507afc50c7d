package schemas

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/schemas"
	"github.com/xeipuuv/gojsonschema"
)

var resumeSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemas.ResumeSchema))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    "resume.schema.json",
			Message: "failed to compile embedded schema",
			Cause:   err,
		}
	}
	return s, nil
})

// Validate checks untrusted input against the resume schema and returns the
// decoded document. Input may be raw JSON ([]byte, string, json.RawMessage),
// a value decoded from JSON or YAML, or a types.Resume.
//
// Validation is all or nothing: on failure no document is returned. Unknown
// properties are ignored. Older schema versions are migrated first.
func Validate(input any) (*types.Resume, error) {
	doc, err := normalize(input)
	if err != nil {
		return nil, err
	}

	if obj, ok := doc.(map[string]any); ok {
		if doc, err = Migrate(obj); err != nil {
			return nil, err
		}
	}

	schema, err := resumeSchema()
	if err != nil {
		return nil, err
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    "resume.schema.json",
			Message: "document could not be loaded",
			Cause:   err,
		}
	}
	if err := resultError(result); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fieldError("(root)", "failed to re-encode document: %v", err)
	}
	var resume types.Resume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fieldError("(root)", "failed to decode document: %v", err)
	}

	if err := checkIDs(&resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// normalize turns any accepted input into the generic form encoding/json
// produces, so YAML maps and typed documents are checked identically.
func normalize(input any) (any, error) {
	var raw []byte
	switch v := input.(type) {
	case nil:
		return nil, fieldError("(root)", "no document")
	case []byte:
		raw = v
	case json.RawMessage:
		raw = v
	case string:
		raw = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fieldError("(root)", "document is not JSON-encodable: %v", err)
		}
		raw = b
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fieldError("(root)", "invalid JSON: %v", err)
	}
	return doc, nil
}

// checkIDs enforces non-empty ids that are unique within each collection.
func checkIDs(r *types.Resume) error {
	var errs []FieldError
	collect := func(name string, ids []string) {
		seen := make(map[string]int, len(ids))
		for i, id := range ids {
			field := fmt.Sprintf("%s.%d.id", name, i)
			if id == "" {
				errs = append(errs, FieldError{Field: field, Message: "id must not be empty"})
				continue
			}
			if first, dup := seen[id]; dup {
				errs = append(errs, FieldError{
					Field:   field,
					Message: fmt.Sprintf("duplicate id %q (first used at index %d)", id, first),
				})
				continue
			}
			seen[id] = i
		}
	}

	collect("experience", recordIDs(r.Experience))
	collect("education", recordIDs(r.Education))
	collect("skills", recordIDs(r.Skills))
	collect("certifications", recordIDs(r.Certifications))
	collect("projects", recordIDs(r.Projects))
	collect("languages", recordIDs(r.Languages))
	collect("awards", recordIDs(r.Awards))

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func recordIDs[T types.Record](records []T) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.RecordID()
	}
	return ids
}
