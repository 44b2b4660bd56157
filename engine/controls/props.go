package controls

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TouchProps is the partial form of TouchMapping.
type TouchProps struct {
	One *State `yaml:"one"`
	Two *State `yaml:"two"`
}

// MouseProps is the partial form of MouseMapping.
type MouseProps struct {
	Left   *State `yaml:"left"`
	Middle *State `yaml:"middle"`
	Right  *State `yaml:"right"`
}

// Props is a partial Config decoded from YAML. Nil fields are absent keys and leave the live
// value untouched on Apply. Unbounded limits are written as .inf / -.inf.
type Props struct {
	Enabled *bool `yaml:"enabled"`

	EnableRotate *bool `yaml:"enable_rotate"`
	EnableZoom   *bool `yaml:"enable_zoom"`
	EnablePan    *bool `yaml:"enable_pan"`

	RotateSpeed *float64 `yaml:"rotate_speed"`
	ZoomSpeed   *float64 `yaml:"zoom_speed"`
	PanSpeed    *float64 `yaml:"pan_speed"`

	DampingFactor *float64 `yaml:"damping_factor"`

	MinDistance *float64 `yaml:"min_distance"`
	MaxDistance *float64 `yaml:"max_distance"`
	MinZoom     *float64 `yaml:"min_zoom"`
	MaxZoom     *float64 `yaml:"max_zoom"`

	MinPolarAngle   *float64 `yaml:"min_polar_angle"`
	MaxPolarAngle   *float64 `yaml:"max_polar_angle"`
	MinAzimuthAngle *float64 `yaml:"min_azimuth_angle"`
	MaxAzimuthAngle *float64 `yaml:"max_azimuth_angle"`

	Touches      *TouchProps `yaml:"touches"`
	MouseButtons *MouseProps `yaml:"mouse_buttons"`
}

// ParseProps decodes YAML props. Unknown keys are rejected; an empty document yields empty props.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Props: the decoded props
//   - error: if the document is malformed
func ParseProps(data []byte) (*Props, error) {
	var p Props
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode props: %w", err)
	}
	return &p, nil
}

// LoadProps reads and decodes a YAML props file.
//
// Parameters:
//   - path: file path
//
// Returns:
//   - *Props: the decoded props
//   - error: if the file cannot be read or decoded
func LoadProps(path string) (*Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read props %s: %w", path, err)
	}
	p, err := ParseProps(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Apply merges the present fields into cfg and validates the result. On a validation error
// cfg is left unchanged.
//
// Parameters:
//   - cfg: the live configuration
//
// Returns:
//   - error: wrapping ErrInvalidConfig if the merged configuration is invalid
func (p *Props) Apply(cfg *Config) error {
	merged := *cfg

	setIf(&merged.Enabled, p.Enabled)
	setIf(&merged.EnableRotate, p.EnableRotate)
	setIf(&merged.EnableZoom, p.EnableZoom)
	setIf(&merged.EnablePan, p.EnablePan)
	setIf(&merged.RotateSpeed, p.RotateSpeed)
	setIf(&merged.ZoomSpeed, p.ZoomSpeed)
	setIf(&merged.PanSpeed, p.PanSpeed)
	setIf(&merged.DampingFactor, p.DampingFactor)
	setIf(&merged.MinDistance, p.MinDistance)
	setIf(&merged.MaxDistance, p.MaxDistance)
	setIf(&merged.MinZoom, p.MinZoom)
	setIf(&merged.MaxZoom, p.MaxZoom)
	setIf(&merged.MinPolarAngle, p.MinPolarAngle)
	setIf(&merged.MaxPolarAngle, p.MaxPolarAngle)
	setIf(&merged.MinAzimuthAngle, p.MinAzimuthAngle)
	setIf(&merged.MaxAzimuthAngle, p.MaxAzimuthAngle)
	if p.Touches != nil {
		setIf(&merged.Touches.One, p.Touches.One)
		setIf(&merged.Touches.Two, p.Touches.Two)
	}
	if p.MouseButtons != nil {
		setIf(&merged.MouseButtons.Left, p.MouseButtons.Left)
		setIf(&merged.MouseButtons.Middle, p.MouseButtons.Middle)
		setIf(&merged.MouseButtons.Right, p.MouseButtons.Right)
	}

	if err := merged.Validate(); err != nil {
		return err
	}
	*cfg = merged
	return nil
}

// UnmarshalYAML decodes a state from its name.
func (s *State) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseState(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes a state as its name.
func (s State) MarshalYAML() (any, error) {
	return s.String(), nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
