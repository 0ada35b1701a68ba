package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/aishki/bazario/internal/domain"
)

// DecodeJSON decodes a JSON value from body into dst.
// It rejects multiple JSON values. Unknown fields are tolerated
// because the same body is decoded twice: once for the action
// envelope, once for the action-specific request type.
func DecodeJSON(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))

	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}

	// Disallow trailing data: {}{}
	// Decode one more time; it must be EOF.
	if err := dec.Decode(&struct{}{}); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.ErrInvalidJSON(err)
	}

	return domain.ErrInvalidJSON(errors.New("multiple JSON values"))
}
