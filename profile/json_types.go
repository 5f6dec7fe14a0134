package profile

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("expected string or array: %w", err)
	}

	*s = arr

	return nil
}
