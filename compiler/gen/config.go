package gen

import (
	"log/slog"
	"strings"

	"github.com/syssam/myragen/compiler/load"
)

// Configuration keys understood by the generator.
const (
	// KeyNamespace selects the namespace of the generated classes.
	KeyNamespace = "myra_ui_generator.namespace"
	// KeyDirectory selects the directory pattern of layout documents.
	KeyDirectory = "myra_ui_generator.xml_directory"
)

// Built-in configuration defaults.
const (
	DefaultNamespace = "GeneratedUI"
	DefaultDirectory = "Content/UI"
)

const (
	keyPrefix           = "myra_ui_generator."
	buildPropertyPrefix = "build_property.MyraUIGenerator_"
)

// Config holds the configuration of a generator.
type Config struct {
	// Sources are the configuration sources consulted once per run.
	Sources Sources

	// Dialect renders the accessor class of each layout.
	Dialect Dialect

	// Features are the enabled feature flags.
	Features []Feature

	// Logger receives run-level logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Sources are the configuration sources of a run, in priority order:
//
//  1. Global[key]
//  2. Global[BuildPropertyKey(key)]
//  3. Files[path][key] for each candidate path, in input order
//
// Blank values are treated as absent at every tier.
type Sources struct {
	Global map[string]string
	Files  map[string]map[string]string
}

// SourcesFromOptions returns the sources held by a decoded options file.
func SourcesFromOptions(o *load.Options) Sources {
	if o == nil {
		return Sources{}
	}
	return Sources{Global: o.Global, Files: o.Files}
}

// Lookup returns the first non-blank value of key across the tiers.
func (s Sources) Lookup(key string, candidates []*load.Candidate) (string, bool) {
	if v, ok := nonBlank(s.Global, key); ok {
		return v, true
	}
	if v, ok := nonBlank(s.Global, BuildPropertyKey(key)); ok {
		return v, true
	}
	if len(s.Files) > 0 {
		for _, c := range candidates {
			kv, ok := s.Files[c.Path]
			if !ok {
				kv = s.Files[strings.ReplaceAll(c.Path, `\`, "/")]
			}
			if v, ok := nonBlank(kv, key); ok {
				return v, true
			}
		}
	}
	return "", false
}

// BuildPropertyKey returns the build-property form of a configuration key:
// "myra_ui_generator.namespace" becomes "build_property.MyraUIGenerator_namespace".
// Keys without the generator prefix are returned with only the build-property
// prefix added.
func BuildPropertyKey(key string) string {
	return buildPropertyPrefix + strings.TrimPrefix(key, keyPrefix)
}

// ResolvedConfig holds the configuration values of one run.
type ResolvedConfig struct {
	Namespace string
	Directory string
}

// ResolveConfig computes the run configuration from the sources, falling
// back to DefaultNamespace and DefaultDirectory.
func ResolveConfig(s Sources, candidates []*load.Candidate) ResolvedConfig {
	return ResolvedConfig{
		Namespace: s.value(KeyNamespace, DefaultNamespace, candidates),
		Directory: s.value(KeyDirectory, DefaultDirectory, candidates),
	}
}

func (s Sources) value(key, def string, candidates []*load.Candidate) string {
	if v, ok := s.Lookup(key, candidates); ok {
		return v
	}
	return def
}

func nonBlank(m map[string]string, key string) (string, bool) {
	v, ok := m[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
