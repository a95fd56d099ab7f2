package display

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DisplayConfig describes one display of a Static provider. Paths are
// relative to the directory containing the configuration file.
type DisplayConfig struct {
	ID     ID     `yaml:"id"`
	Name   string `yaml:"name"`
	Bounds []int  `yaml:"bounds,flow,omitempty"`
	// An .icc, .icm or .tif/.tiff file
	Profile string `yaml:"profile,omitempty"`
	// A driver table blob in video card gamma layout
	DriverTable string `yaml:"driver_table,omitempty"`
	// A raw 3x256 big endian 16 bit gamma ramp, used when DriverTable is empty
	Ramp string `yaml:"ramp,omitempty"`
}

type Config struct {
	Displays []DisplayConfig `yaml:"displays"`
}

func (dc DisplayConfig) Display() Display {
	d := Display{ID: dc.ID, Name: dc.Name}
	if len(dc.Bounds) == 4 {
		d.Bounds = image.Rect(dc.Bounds[0], dc.Bounds[1], dc.Bounds[2], dc.Bounds[3])
	}
	return d
}

func (c *Config) validate() error {
	seen := make(map[ID]bool, len(c.Displays))
	for i, dc := range c.Displays {
		if seen[dc.ID] {
			return fmt.Errorf("display %d: duplicate id %d", i, dc.ID)
		}
		seen[dc.ID] = true
		if len(dc.Bounds) != 0 && len(dc.Bounds) != 4 {
			return fmt.Errorf("display %d: bounds must have four values, got %d", dc.ID, len(dc.Bounds))
		}
		if dc.DriverTable != "" && dc.Ramp != "" {
			return fmt.Errorf("display %d: only one of driver_table and ramp may be set", dc.ID)
		}
	}
	return nil
}

// ParseConfig parses a YAML display configuration resolving relative paths
// against base_dir.
func ParseConfig(data []byte, base_dir string) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid display configuration: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base_dir, *p)
		}
	}
	for i := range c.Displays {
		dc := &c.Displays[i]
		resolve(&dc.Profile)
		resolve(&dc.DriverTable)
		resolve(&dc.Ramp)
	}
	return &c, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, filepath.Dir(path))
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
