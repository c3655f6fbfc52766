package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HUDSpec is the top-level gauge layout, usually loaded from gauges.yaml.
type HUDSpec struct {
	Transition TransitionSpec `yaml:"transition"`
	Panel      PanelSpec      `yaml:"panel"`
	Gauges     []GaugeSpec    `yaml:"gauges"`
}

// TransitionSpec configures the animator every gauge shares.
type TransitionSpec struct {
	DurationMS int    `yaml:"duration_ms"`
	Curve      string `yaml:"curve"`
}

// PanelSpec positions the stacked bars on screen. Zero fields keep the
// panel's built-in defaults.
type PanelSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	BarWidth  float64 `yaml:"bar_width"`
	BarHeight float64 `yaml:"bar_height"`
	Spacing   float64 `yaml:"spacing"`
}

// GaugeSpec describes one gauge: its key, starting values, color ramp and
// critical rule. Critical names a built-in predicate (low, high or none);
// CriticalScript points at a tengo script and wins when both are set.
type GaugeSpec struct {
	Key            string     `yaml:"key"`
	Label          string     `yaml:"label"`
	Value          float64    `yaml:"value"`
	Max            float64    `yaml:"max"`
	LowThreshold   float64    `yaml:"low_threshold"`
	HighThreshold  float64    `yaml:"high_threshold"`
	NormalColor    *YAMLColor `yaml:"normal_color"`
	LowColor       *YAMLColor `yaml:"low_color"`
	HighColor      *YAMLColor `yaml:"high_color"`
	StaticColor    bool       `yaml:"static_color"`
	Critical       string     `yaml:"critical"`
	CriticalScript string     `yaml:"critical_script"`
}

func LoadHUDSpec() (*HUDSpec, error) {
	spec, err := LoadSpec[HUDSpec]("gauges.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// AsRGBA returns the parsed color with straight channels, or fallback when
// the spec omitted it.
func (c *YAMLColor) AsRGBA(fallback color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
