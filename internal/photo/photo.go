// Package photo turns a profile picture into the data URI stored on the
// resume.
package photo

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// MaxSize is the largest accepted photo in bytes.
const MaxSize = 5 * 1024 * 1024

// User-facing rejection messages
const (
	MsgNotImage = "Please select an image file"
	MsgTooLarge = "File size must be less than 5MB"
)

var accepted = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// Error reports a rejected or unreadable photo.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("photo error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("photo error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FromFile reads the image at path and returns it as a data URI.
func FromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer func() { _ = f.Close() }()

	// One byte past the limit is enough to tell an oversized file apart.
	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return FromBytes(data)
}

// FromBytes checks that data is an accepted image no larger than MaxSize
// and encodes it as a base64 data URI.
func FromBytes(data []byte) (string, error) {
	mime := mimetype.Detect(data)
	if len(data) == 0 || !isAccepted(mime) {
		return "", &Error{Message: MsgNotImage}
	}
	if len(data) > MaxSize {
		return "", &Error{Message: MsgTooLarge}
	}
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func isAccepted(mime *mimetype.MIME) bool {
	for _, a := range accepted {
		if mime.Is(a) {
			return true
		}
	}
	return false
}
