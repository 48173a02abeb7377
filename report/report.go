// Package report renders analyses for terminals and text files.
package report

import (
	"io"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/viscm/analysis"
	"github.com/pkg/errors"
)

// DefaultTemplate summarizes both delta sequences of an analysis.
const DefaultTemplate = `{% autoescape off %}{{ name }}: {{ points }} colors, metric {{ metric }}
Perceptual derivative (ΔE)
  Length: {{ perceptual.TotalLength|floatformat:1 }}
  RMS: {{ perceptual.RMSDeviation|floatformat:2 }} ({{ perceptual_pct|floatformat:1 }}%)
  Range: {{ perceptual.MinDelta|floatformat:3 }} .. {{ perceptual.MaxDelta|floatformat:3 }}
  Points: {{ perceptual_points }}
Lightness derivative (ΔL*)
  Length: {{ lightness.TotalLength|floatformat:1 }}
  RMS: {{ lightness.RMSDeviation|floatformat:2 }} ({{ lightness_pct|floatformat:1 }}%)
  Range: {{ lightness.MinDelta|floatformat:3 }} .. {{ lightness.MaxDelta|floatformat:3 }}
  Points: {{ lightness_points }}
{% endautoescape %}`

// Template renders analyses.
type Template struct {
	tpl *pongo2.Template
}

// NewTemplate compiles src. An empty src selects DefaultTemplate.
func NewTemplate(src string) (*Template, error) {
	if src == "" {
		src = DefaultTemplate
	}
	tpl, e := pongo2.FromString(src)
	if e != nil {
		return nil, errors.Wrap(e, "compiling report template")
	}
	return &Template{tpl}, nil
}

// LoadTemplate compiles the template file at path.
func LoadTemplate(path string) (*Template, error) {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return nil, errors.Wrapf(e, "loading report template %s", path)
	}
	return &Template{tpl}, nil
}

// Context returns the variables a template is rendered with.
func Context(a analysis.Analysis) pongo2.Context {
	return pongo2.Context{
		"name":              a.Name,
		"metric":            a.Metric,
		"points":            a.Points,
		"perceptual":        a.Perceptual,
		"perceptual_pct":    a.Perceptual.Uniformity(),
		"perceptual_points": len(a.PerceptualDeltas),
		"perceptual_deltas": a.PerceptualDeltas,
		"lightness":         a.Lightness,
		"lightness_pct":     a.Lightness.Uniformity(),
		"lightness_points":  len(a.LightnessDeltas),
		"lightness_deltas":  a.LightnessDeltas,
	}
}

// Render executes the template for a.
func (t *Template) Render(a analysis.Analysis) (string, error) {
	return t.tpl.Execute(Context(a))
}

// Write renders a to w.
func (t *Template) Write(w io.Writer, a analysis.Analysis) error {
	s, e := t.Render(a)
	if e != nil {
		return errors.Wrapf(e, "rendering report for %s", a.Name)
	}
	_, e = io.WriteString(w, s)
	return e
}
