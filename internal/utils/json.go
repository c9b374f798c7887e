package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeStrict unmarshals data into target, rejecting unknown fields and trailing content.
// Typos in static data files surface at load time instead of as silently zeroed fields.
func DecodeStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing data after JSON value")
	}
	return nil
}
