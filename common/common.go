package common

import "net/url"

// EncodeURLValues appends an encoded query string to path when values are
// present
func EncodeURLValues(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
