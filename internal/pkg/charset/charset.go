// Package charset resolves the code page of console tool output.
//
// ipconfig and netsh write in the console OEM code page (IBM437, IBM850, ...)
// unless the console was switched to UTF-8. Decoding is opt-in: the default is
// to pass bytes through untouched.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Lookup returns the encoding registered under the IANA name. An empty name,
// or any spelling of UTF-8, yields a nil encoding meaning "no decoding".
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8", "raw":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown output encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("output encoding %q is not supported", name)
	}
	return enc, nil
}

// Decode converts b from enc to UTF-8. A nil enc returns b unchanged.
func Decode(enc encoding.Encoding, b []byte) ([]byte, error) {
	if enc == nil || len(b) == 0 {
		return b, nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode command output: %w", err)
	}
	return out, nil
}
