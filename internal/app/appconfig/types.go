package appconfig

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// HeaderMap is a set of HTTP headers decoded from `Name:base64(value),Name:base64(value)`.
// Values are base64 encoded since typical header values (User-Agent, Cookie) contain commas and colons.
type HeaderMap map[string]string

func (m *HeaderMap) Decode(value string) error {
	*m = HeaderMap{}
	if strings.TrimSpace(value) == "" {
		return nil
	}
	for _, pair := range strings.Split(value, ",") {
		kv := strings.Split(pair, ":")
		if len(kv) != 2 {
			return fmt.Errorf("invalid header map: expect a `:` separated key pair for each element, but got: %s", value)
		}
		val, err := base64.StdEncoding.DecodeString(strings.TrimSpace(kv[1]))
		if err != nil {
			return fmt.Errorf("invalid value in header map: base64 decoding failed: %s (%w)", kv[1], err)
		}
		(*m)[http.CanonicalHeaderKey(strings.TrimSpace(kv[0]))] = string(val)
	}
	return nil
}
