package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

var (
	// ErrEmptyBody is returned when the request carries no JSON document.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrTrailingData is returned when anything but whitespace follows the JSON document.
	ErrTrailingData = errors.New("unexpected data after JSON document")
)

// DecodeJSON decodes exactly one JSON document from the request body into obj.
func DecodeJSON(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w at offset %d", ErrTrailingData, dec.InputOffset())
	}

	return nil
}
