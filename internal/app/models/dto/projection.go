package dto

import (
	"encoding/json"
	"fmt"
)

// Project restricts each item of a list to the given JSON fields plus "id".
// A nil field list returns items unchanged.
func Project(items interface{}, fields []string) (interface{}, error) {
	if fields == nil {
		return items, nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items for projection: %w", err)
	}

	var docs []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items for projection: %w", err)
	}

	keep := make(map[string]bool, len(fields)+1)
	keep["id"] = true
	for _, f := range fields {
		keep[f] = true
	}

	projected := make([]map[string]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		out := make(map[string]json.RawMessage, len(keep))
		for k, v := range doc {
			if keep[k] {
				out[k] = v
			}
		}
		// Selected fields that were omitted as empty still appear, as null.
		for _, f := range fields {
			if _, ok := out[f]; !ok {
				out[f] = json.RawMessage("null")
			}
		}
		projected = append(projected, out)
	}
	return projected, nil
}
