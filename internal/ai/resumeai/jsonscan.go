package resumeai

import "errors"

// ErrNoJSONObject is returned when a model reply holds no balanced JSON
// object.
var ErrNoJSONObject = errors.New("no JSON object found in model reply")

// extractJSONObject returns the first balanced JSON object in s. Model
// replies often wrap the object in prose or code fences; anything before the
// first '{' and after its matching '}' is ignored. Braces inside string
// literals do not count toward nesting.
func extractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}

	return "", ErrNoJSONObject
}
