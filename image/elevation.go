package image

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ReadElevation parses a grid of whitespace separated samples, one row per
// line, such as an elevation model. The input may be gzip compressed.
// Values are normalized to [0,1] over the finite samples; missing or
// unparsable samples become 0.
func ReadElevation(r io.Reader) (Field, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return Field{}, errors.Wrap(err, "opening compressed elevation data")
		}
		defer zr.Close()
		br = bufio.NewReader(zr)
	}

	var (
		values []float64
		width  int
		height int
		lo, hi = math.Inf(1), math.Inf(-1)
	)
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if height == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return Field{}, errors.Errorf("elevation row %d has %d samples, want %d", height+1, len(fields), width)
		}
		for _, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsInf(v, 0) {
				v = math.NaN()
			}
			if !math.IsNaN(v) {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
			values = append(values, v)
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return Field{}, errors.Wrap(err, "reading elevation data")
	}
	if height == 0 {
		return Field{}, errors.New("no elevation data")
	}

	span := hi - lo
	for i, v := range values {
		switch {
		case math.IsNaN(v), !(span > 0):
			values[i] = 0
		default:
			values[i] = (v - lo) / span
		}
	}
	return Field{width, height, values}, nil
}
