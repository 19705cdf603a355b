package gen

import "github.com/syssam/myragen/compiler/load"

var (
	// FeatureDedupe keeps only the first widget of each identifier. Without
	// it, repeated identifiers produce repeated fields, which the target
	// compiler rejects.
	FeatureDedupe = Feature{
		Name:        "dedupe",
		Stage:       Experimental,
		Default:     false,
		Description: "Dedupe drops widgets whose identifier was already declared in the same layout",
	}

	// FeatureSegmentMatch matches the directory pattern against whole path
	// segments. Without it, any path containing the pattern is selected.
	FeatureSegmentMatch = Feature{
		Name:        "segment-match",
		Stage:       Experimental,
		Default:     false,
		Description: "SegmentMatch requires the directory pattern to match whole directory names",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureDedupe,
		FeatureSegmentMatch,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change behavior.
	Experimental

	// Alpha features are complete, but breaking changes are still expected.
	Alpha

	// Beta features are documented and no breaking changes are expected.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

// String implements fmt.Stringer.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the generator.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureEnabled reports if the given feature name is enabled.
// It returns an error if the feature is unknown.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	f, ok := FeatureByName(name)
	if !ok {
		return false, NewConfigError("Feature", name, "unknown feature")
	}
	for _, e := range c.Features {
		if e.Name == name {
			return true, nil
		}
	}
	return f.Default, nil
}

// featureEnabled is FeatureEnabled for a known feature.
func (c *Config) featureEnabled(f Feature) bool {
	enabled, _ := c.FeatureEnabled(f.Name)
	return enabled
}

// MatchMode returns the directory matching mode selected by the features.
func (c *Config) MatchMode() load.MatchMode {
	if c.featureEnabled(FeatureSegmentMatch) {
		return load.MatchSegment
	}
	return load.MatchSubstring
}
