package transformer

import (
	"encoding/json"
	"fmt"
	"io"
)

// Transformer decodes a raw response body into records.
type Transformer[R any] interface {
	Transform(reader io.Reader) ([]R, error)
}

// JSONArray decodes a top-level JSON array.
type JSONArray[R any] struct{}

func NewJSONArray[R any]() JSONArray[R] {
	return JSONArray[R]{}
}

func (JSONArray[R]) Transform(reader io.Reader) ([]R, error) {
	var records []R
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode record array: %w", err)
	}
	if records == nil {
		// a literal null body is not a record set
		return nil, fmt.Errorf("failed to decode record array: got null")
	}
	return records, nil
}
