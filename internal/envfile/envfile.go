// Package envfile reads and writes envelopes as YAML documents.
//
// A document stores the raw fixed-point integers of every point, so loading
// and saving an envelope is lossless:
//
//	name: pulse
//	channels: 4
//	synchronized: false
//	points:
//	  - time: 0
//	    curve: bezier
//	    values: [0, 0, 0, 1024]
//	    out_delta_x: [250]
//	    out_delta_y: [2048]
//	  - time: 1000
//	    curve: linear
//	    values: [1024, 1024, 1024, 1024]
package envfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	envelope "github.com/88998347/ddnet-android-ci"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument indicates a document that does not describe a valid envelope.
var ErrInvalidDocument = errors.New("invalid envelope document")

// Document is the YAML representation of an envelope.
type Document struct {
	Name         string     `yaml:"name,omitempty"`
	Channels     int        `yaml:"channels"`
	Synchronized bool       `yaml:"synchronized"`
	Points       []PointDoc `yaml:"points"`
}

// PointDoc is the YAML representation of a point. Per-channel lists may be
// shorter than the channel count; missing entries are zero.
type PointDoc struct {
	Time      int32   `yaml:"time"`
	Curve     string  `yaml:"curve,omitempty"`
	Values    []int32 `yaml:"values,flow"`
	InDeltaX  []int32 `yaml:"in_delta_x,flow,omitempty"`
	InDeltaY  []int32 `yaml:"in_delta_y,flow,omitempty"`
	OutDeltaX []int32 `yaml:"out_delta_x,flow,omitempty"`
	OutDeltaY []int32 `yaml:"out_delta_y,flow,omitempty"`
}

// Load reads a document from path and builds the envelope it describes.
func Load(path string) (*envelope.Envelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open envelope file: %w", err)
	}
	defer f.Close()

	env, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return env, nil
}

// Save writes env to path as a YAML document.
func Save(path string, env *envelope.Envelope) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create envelope file: %w", err)
	}

	if err := Encode(f, env); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Decode reads one YAML document from r and builds the envelope it describes.
func Decode(r io.Reader) (*envelope.Envelope, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc.Envelope()
}

// Encode writes env to w as a YAML document.
func Encode(w io.Writer, env *envelope.Envelope) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(FromEnvelope(env)); err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}
	return enc.Close()
}

// FromEnvelope builds the document describing env.
func FromEnvelope(env *envelope.Envelope) *Document {
	doc := &Document{
		Name:         env.Name(),
		Channels:     env.Channels(),
		Synchronized: env.Synchronized(),
	}

	for _, p := range env.ExportPoints() {
		pd := PointDoc{
			Time:   p.Time,
			Curve:  p.Curve.String(),
			Values: trimZeros(p.Values[:], env.Channels()),
		}
		if p.Bezier != (envelope.Bezier{}) {
			pd.InDeltaX = trimZeros(p.Bezier.InDeltaX[:], 0)
			pd.InDeltaY = trimZeros(p.Bezier.InDeltaY[:], 0)
			pd.OutDeltaX = trimZeros(p.Bezier.OutDeltaX[:], 0)
			pd.OutDeltaY = trimZeros(p.Bezier.OutDeltaY[:], 0)
		}
		doc.Points = append(doc.Points, pd)
	}
	return doc
}

// Envelope builds the envelope described by d.
func (d *Document) Envelope() (*envelope.Envelope, error) {
	if d.Channels < 1 || d.Channels > envelope.MaxChannels {
		return nil, fmt.Errorf("%w: channels must be 1-%d, got %d", ErrInvalidDocument, envelope.MaxChannels, d.Channels)
	}

	points := make([]envelope.Point, 0, len(d.Points))
	for i, pd := range d.Points {
		p, err := pd.point()
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %w", ErrInvalidDocument, i, err)
		}
		points = append(points, p)
	}

	env := envelope.New(d.Channels)
	env.SetName(d.Name)
	env.SetSynchronized(d.Synchronized)
	if err := env.ReplacePoints(points); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return env, nil
}

func (pd PointDoc) point() (envelope.Point, error) {
	p := envelope.Point{Time: pd.Time, Curve: envelope.CurveLinear}

	if pd.Curve != "" {
		curve, err := envelope.ParseCurveType(pd.Curve)
		if err != nil {
			return p, err
		}
		p.Curve = curve
	}

	fields := []struct {
		name string
		src  []int32
		dst  *[envelope.MaxChannels]int32
	}{
		{"values", pd.Values, &p.Values},
		{"in_delta_x", pd.InDeltaX, &p.Bezier.InDeltaX},
		{"in_delta_y", pd.InDeltaY, &p.Bezier.InDeltaY},
		{"out_delta_x", pd.OutDeltaX, &p.Bezier.OutDeltaX},
		{"out_delta_y", pd.OutDeltaY, &p.Bezier.OutDeltaY},
	}
	for _, f := range fields {
		if len(f.src) > envelope.MaxChannels {
			return p, fmt.Errorf("%s has %d entries, max %d", f.name, len(f.src), envelope.MaxChannels)
		}
		copy(f.dst[:], f.src)
	}
	return p, nil
}

// trimZeros drops trailing zeros beyond keep entries.
func trimZeros(v []int32, keep int) []int32 {
	n := len(v)
	for n > keep && v[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return append([]int32(nil), v[:n]...)
}
