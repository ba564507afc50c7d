// Package export turns a rendered resume page into downloadable files: an A4
// PDF document and a PNG image.
package export

import "fmt"

// MsgRegionNotFound is reported when the page has no element with the
// requested id.
const MsgRegionNotFound = "Resume element not found"

// ExportError is returned for every export failure. Message is suitable for
// showing to the user.
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
