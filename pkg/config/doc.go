// Package config loads textminator rules.
//
// Rules come from the first source available in this chain:
//
//  1. the file given with --config
//  2. textminator.properties next to the running executable
//  3. the built-in rule file embedded in the binary
//
// Every source is read through koanf. Files ending in .toml or .yaml/.yml use
// the matching koanf parser; everything else is read as a Java-style
// properties file. Regardless of format the source is flattened to dotted
// keys and grouped by the <name>.regex suffix, one rule per group.
//
// Besides the rule chain, the package resolves tool settings (default config
// path, stats format, log file) from TEXTMINATOR_* environment variables.
package config
