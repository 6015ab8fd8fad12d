package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/quatkit/internal/config"
	"github.com/Faultbox/quatkit/pkg/math"
)

type quatOut struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
	W float32 `yaml:"w"`
}

type eulerOut struct {
	Pitch float32 `yaml:"pitch"`
	Roll  float32 `yaml:"roll"`
	Yaw   float32 `yaml:"yaw"`
	Unit  string  `yaml:"unit"`
}

type axisAngleOut struct {
	Axis  [3]float32 `yaml:"axis,flow"`
	Angle float32    `yaml:"angle"`
	Unit  string     `yaml:"unit"`
}

type scaleOut struct {
	Scale [3]float32 `yaml:"scale,flow"`
}

type rectOut struct {
	Min    [2]float32 `yaml:"min,flow"`
	Max    [2]float32 `yaml:"max,flow"`
	Center [2]float32 `yaml:"center,flow"`
	Size   [2]float32 `yaml:"size,flow"`
}

// printer writes results as text lines or YAML documents.
type printer struct {
	w   io.Writer
	cfg *config.Config
}

func (a *app) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), cfg: a.cfg}
}

// emit writes v as YAML, or text when the text format is selected.
func (p *printer) emit(v any, text string) error {
	if p.cfg.Output.Format == config.FormatYAML {
		return writeYAML(p.w, v)
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

// writeYAML encodes v as one YAML document and flushes it.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (p *printer) num(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', p.cfg.Output.Precision, 32)
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-") // values that round to zero print unsigned
	}
	return s
}

func (p *printer) nums(vs ...float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = p.num(v)
	}
	return strings.Join(parts, ", ")
}

// angle converts a result angle from radians to the configured unit.
func (p *printer) angle(rad float32) float32 {
	if p.cfg.Degrees() {
		return math.ToDegrees(rad)
	}
	return rad
}

func (p *printer) quat(q math.Quat) error {
	text := fmt.Sprintf("x=%s y=%s z=%s w=%s", p.num(q.X), p.num(q.Y), p.num(q.Z), p.num(q.W))
	return p.emit(quatOut{q.X, q.Y, q.Z, q.W}, text)
}

func (p *printer) euler(e math.Euler) error {
	out := eulerOut{
		Pitch: p.angle(e.Pitch),
		Roll:  p.angle(e.Roll),
		Yaw:   p.angle(e.Yaw),
		Unit:  p.cfg.Output.AngleUnit,
	}
	text := fmt.Sprintf("pitch=%s roll=%s yaw=%s (%s)", p.num(out.Pitch), p.num(out.Roll), p.num(out.Yaw), out.Unit)
	return p.emit(out, text)
}

func (p *printer) axisAngle(aa math.Vec4) error {
	axis := aa.Axis()
	out := axisAngleOut{
		Axis:  [3]float32{axis.X, axis.Y, axis.Z},
		Angle: p.angle(aa.Angle()),
		Unit:  p.cfg.Output.AngleUnit,
	}
	text := fmt.Sprintf("axis=(%s) angle=%s (%s)", p.nums(axis.X, axis.Y, axis.Z), p.num(out.Angle), out.Unit)
	return p.emit(out, text)
}

func (p *printer) rect(r math.Rect) error {
	c, s := r.Center(), r.Size()
	out := rectOut{
		Min:    [2]float32{r.Min.X, r.Min.Y},
		Max:    [2]float32{r.Max.X, r.Max.Y},
		Center: [2]float32{c.X, c.Y},
		Size:   [2]float32{s.X, s.Y},
	}
	text := fmt.Sprintf("min=(%s) max=(%s) center=(%s) size=(%s)",
		p.nums(r.Min.X, r.Min.Y), p.nums(r.Max.X, r.Max.Y), p.nums(c.X, c.Y), p.nums(s.X, s.Y))
	return p.emit(out, text)
}

func (p *printer) scale(v math.Vec3) error {
	text := fmt.Sprintf("scale=(%s)", p.nums(v.X, v.Y, v.Z))
	return p.emit(scaleOut{[3]float32{v.X, v.Y, v.Z}}, text)
}
