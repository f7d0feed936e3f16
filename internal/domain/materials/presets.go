package materials

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

const DefaultPreset = "default"

var ErrUnknownPreset = errors.New("unknown preset")

type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Config      Config `json:"config" yaml:"config"`
}

// Presets is a read-only catalogue of named mixes, built once at startup.
type Presets struct {
	byName map[string]Preset
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

func NewPresets(extra ...Preset) *Presets {
	p := &Presets{byName: map[string]Preset{
		DefaultPreset: {Name: DefaultPreset, Description: "Standard structural concrete", Config: DefaultConfig()},
	}}
	for _, e := range extra {
		p.byName[e.Name] = e
	}
	return p
}

// LoadPresets reads a YAML file of presets. An empty path returns only the
// built-in default. Entries may override the default.
func LoadPresets(path string) (*Presets, error) {
	if path == "" {
		return NewPresets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(data)
}

func ParsePresets(data []byte) (*Presets, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	for _, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: preset without name", ErrInvalidConfig)
		}
		if err := p.Config.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return NewPresets(f.Presets...), nil
}

func (p *Presets) Get(name string) (Preset, error) {
	if name == "" {
		name = DefaultPreset
	}
	preset, ok := p.byName[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return preset, nil
}

// List returns presets sorted by name with the default first.
func (p *Presets) List() []Preset {
	out := make([]Preset, 0, len(p.byName))
	for _, v := range p.byName {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == DefaultPreset {
			return true
		}
		if out[j].Name == DefaultPreset {
			return false
		}
		return out[i].Name < out[j].Name
	})
	return out
}
