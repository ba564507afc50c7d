// Package schemas holds the JSON Schema documents shipped with the module.
package schemas

import _ "embed"

// ResumeSchema is the draft-07 schema for a persisted resume document.
//
//go:embed resume.schema.json
var ResumeSchema string
