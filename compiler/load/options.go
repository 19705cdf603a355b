package load

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Options holds the raw configuration values read from an options file.
//
//	global:
//	  myra_ui_generator.namespace: MyGame.UI
//	  build_property.MyraUIGenerator_xml_directory: Assets/Layouts
//	files:
//	  Content/UI/Title.xml:
//	    myra_ui_generator.namespace: Title
type Options struct {
	// Global holds options that apply to the whole run, including the
	// build_property.* forms.
	Global map[string]string `yaml:"global,omitempty"`

	// Files holds options scoped to a single input, keyed by input path.
	Files map[string]map[string]string `yaml:"files,omitempty"`
}

// ParseOptions decodes an options document. Backslashes in file keys are
// mapped to slashes so that keys match the paths produced by Walk.
func ParseOptions(data []byte) (*Options, error) {
	o := &Options{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	if len(o.Files) > 0 {
		files := make(map[string]map[string]string, len(o.Files))
		for p, kv := range o.Files {
			files[normalize(p)] = kv
		}
		o.Files = files
	}
	return o, nil
}

// ReadOptions reads and decodes the options file name from fsys.
func ReadOptions(fsys fs.FS, name string) (*Options, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	return ParseOptions(data)
}
