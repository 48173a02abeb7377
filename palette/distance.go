package palette

import (
	"math"
	"strings"

	"github.com/jkl1337/go-chromath/deltae"
)

// Metric selects a perceptual color difference formula.
type Metric int

// Supported metrics. The zero value is CIEDE2000.
const (
	CIEDE2000 Metric = iota
	CIE76
	CMC
	ITP
	Jz
)

// DefaultMetric is used when no metric, or an unknown one, is given.
const DefaultMetric = CIEDE2000

type metricDef struct {
	name    string
	aliases []string
	delta   func(c1, c2 RGB) float64
}

var klch = &deltae.KLChDefault

var metrics = [...]metricDef{
	CIEDE2000: {"2000", []string{"ciede2000", "de2000", "cie2000"}, deltaE2000},
	CIE76:     {"76", []string{"cie76", "de76"}, deltaE76},
	CMC:       {"CMC", []string{"cmc", "declc"}, deltaECMC},
	ITP:       {"ITP", []string{"itp", "ictcp"}, deltaEITP},
	Jz:        {"Jz", []string{"jz", "jzazbz"}, deltaEJz},
}

// Metrics returns every supported metric.
func Metrics() []Metric {
	ms := make([]Metric, len(metrics))
	for i := range metrics {
		ms[i] = Metric(i)
	}
	return ms
}

func (m Metric) valid() bool {
	return m >= 0 && int(m) < len(metrics)
}

func (m Metric) String() string {
	if !m.valid() {
		return metrics[DefaultMetric].name
	}
	return metrics[m].name
}

// LookupMetric resolves a metric by name, case-insensitively. The second
// result is false when the name is not recognized, in which case the
// default metric is returned.
func LookupMetric(name string) (Metric, bool) {
	name = strings.TrimSpace(name)
	for i, def := range metrics {
		if strings.EqualFold(name, def.name) {
			return Metric(i), true
		}
		for _, a := range def.aliases {
			if strings.EqualFold(name, a) {
				return Metric(i), true
			}
		}
	}
	return DefaultMetric, false
}

// ParseMetric is LookupMetric without the found flag: unknown names
// silently become CIEDE2000.
func ParseMetric(name string) Metric {
	m, _ := LookupMetric(name)
	return m
}

// Distance returns the perceptual difference between c1 and c2 under m.
// The result is never negative and is zero for identical colors. CMC is
// not symmetric: c1 is the reference color. Out-of-range metrics use
// CIEDE2000.
func Distance(c1, c2 RGB, m Metric) float64 {
	if !m.valid() {
		m = DefaultMetric
	}
	if c1 == c2 {
		return 0
	}
	d := metrics[m].delta(c1, c2)
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return d
}

func deltaE2000(c1, c2 RGB) float64 {
	return deltae.CIE2000(ToLab(c1), ToLab(c2), klch)
}

func deltaE76(c1, c2 RGB) float64 {
	l1, l2 := ToLab(c1), ToLab(c2)
	dl := l1.L() - l2.L()
	da := l1.A() - l2.A()
	db := l1.B() - l2.B()
	return math.Sqrt(dl*dl + da*da + db*db)
}
