package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// SourceKind identifies which link of the chain supplied the rules
type SourceKind int

const (
	// SourceUser is the file given explicitly with --config
	SourceUser SourceKind = iota
	// SourceAdjacent is textminator.properties next to the executable
	SourceAdjacent
	// SourceBuiltin is the rule file embedded in the binary
	SourceBuiltin
)

// String returns the kind as shown in logs and --config-info
func (k SourceKind) String() string {
	switch k {
	case SourceUser:
		return "custom"
	case SourceAdjacent:
		return "adjacent"
	case SourceBuiltin:
		return "built-in"
	default:
		return "unknown"
	}
}

// Source describes where a rule set was loaded from
type Source struct {
	Kind SourceKind
	// Path is the absolute file path; empty for the built-in source
	Path string
}

func (s Source) String() string {
	if s.Path == "" {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s (%s)", s.Kind, s.Path)
}

// ParserFor picks the koanf parser for a rule file by its extension
func ParserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return Properties()
	}
}
