// Package render turns identifiers into their external text forms.
package render

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/viant/idgen"
)

// Supported formats.
const (
	FormatUUID = "uuid"
	FormatHex  = "hex"
	FormatBits = "bits"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Validate checks that format is supported.
func Validate(format string) error {
	switch format {
	case FormatUUID, FormatHex, FormatBits:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Format renders id: uuid is the canonical 8-4-4-4-12 form, hex is 32
// lowercase digits and bits is the signed high and low halves separated by
// a space.
func Format(id uuid.UUID, format string) (string, error) {
	switch format {
	case FormatUUID:
		return id.String(), nil
	case FormatHex:
		return hex.EncodeToString(id[:]), nil
	case FormatBits:
		hi, lo := idgen.Bits(id)
		return strconv.FormatInt(hi, 10) + " " + strconv.FormatInt(lo, 10), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
