package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// PropertiesParser is a koanf parser for Java-style properties files.
//
// Keys are returned flat: "email.regex" stays a single key and is never split
// into nested maps. Values are literal, there is no escape or continuation
// processing, so a pattern is written exactly as the regexp package reads it.
type PropertiesParser struct{}

// Properties returns a properties parser
func Properties() *PropertiesParser {
	return &PropertiesParser{}
}

// Unmarshal parses properties bytes into a flat key/value map
func (p *PropertiesParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
	out := make(map[string]interface{})

	for i, raw := range strings.Split(string(b), "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimLeft(line, " \t\f")
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
			continue
		}

		key, value := trimmed, ""
		if sep := strings.IndexAny(trimmed, "=:"); sep >= 0 {
			key = trimmed[:sep]
			value = strings.TrimLeft(trimmed[sep+1:], " \t\f")
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: property without a key", i+1)
		}

		out[key] = value
	}

	return out, nil
}

// Marshal renders a flat map as properties, one sorted key per line
func (p *PropertiesParser) Marshal(o map[string]interface{}) ([]byte, error) {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		if _, isMap := o[k].(map[string]interface{}); isMap {
			return nil, fmt.Errorf("nested value under %q cannot be written as a property", k)
		}
		fmt.Fprintf(&buf, "%s=%s\n", k, stringValue(o[k]))
	}

	return buf.Bytes(), nil
}

// stringValue renders a parsed value the way the properties form would
// have spelled it
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
