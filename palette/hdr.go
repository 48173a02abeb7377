package palette

import "math"

// SDR reference white in cd/m², used to place relative XYZ on the absolute
// scale expected by the PQ transfer function.
const mediaWhite = 203.0

// SMPTE ST 2084 (PQ) constants.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// pq encodes an absolute luminance with exponent m2.
func pq(v, m2 float64) float64 {
	if v <= 0 {
		v = 0
	}
	p := math.Pow(v/10000, pqM1)
	return math.Pow((pqC1+pqC2*p)/(1+pqC3*p), m2)
}

type ictcp struct {
	i, ct, cp float64
}

func toICtCp(c RGB) ictcp {
	xyz := ToXYZ(c)
	x, y, z := xyz.X*mediaWhite, xyz.Y*mediaWhite, xyz.Z*mediaWhite

	l := pq(0.3592832590121217*x+0.6976051147779502*y-0.0358915932320290*z, pqM2)
	m := pq(-0.1920808463704993*x+1.1004767970374321*y+0.0753748658519118*z, pqM2)
	s := pq(0.0070797844607479*x+0.0748396662186362*y+0.8433265453898765*z, pqM2)

	return ictcp{
		i:  0.5*l + 0.5*m,
		ct: (6610*l - 13613*m + 7003*s) / 4096,
		cp: (17933*l - 17390*m - 543*s) / 4096,
	}
}

// deltaEITP implements ITU-R BT.2124, which scales Ct by one half.
func deltaEITP(c1, c2 RGB) float64 {
	p, q := toICtCp(c1), toICtCp(c2)
	di := p.i - q.i
	dt := 0.5 * (p.ct - q.ct)
	dp := p.cp - q.cp
	return 720 * math.Sqrt(di*di+dt*dt+dp*dp)
}

// Jzazbz constants from Safdar et al. 2017.
const (
	jzB  = 1.15
	jzG  = 0.66
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
	jzP  = 1.7 * 2523.0 / 32
)

type jzazbz struct {
	j, a, b float64
}

func toJzazbz(c RGB) jzazbz {
	xyz := ToXYZ(c)
	x, y, z := xyz.X*mediaWhite, xyz.Y*mediaWhite, xyz.Z*mediaWhite
	xm := jzB*x - (jzB-1)*z
	ym := jzG*y - (jzG-1)*x

	l := pq(0.41478972*xm+0.579999*ym+0.0146480*z, jzP)
	m := pq(-0.2015100*xm+1.120649*ym+0.0531008*z, jzP)
	s := pq(-0.0166008*xm+0.264800*ym+0.6684799*z, jzP)

	iz := 0.5*l + 0.5*m
	return jzazbz{
		j: (1+jzD)*iz/(1+jzD*iz) - jzD0,
		a: 3.524000*l - 4.066708*m + 0.542708*s,
		b: 0.199076*l + 1.096799*m - 1.295875*s,
	}
}

// deltaEJz is ΔEz, computed from lightness, chroma and hue in JzCzhz.
func deltaEJz(c1, c2 RGB) float64 {
	p, q := toJzazbz(c1), toJzazbz(c2)
	c1z, c2z := math.Hypot(p.a, p.b), math.Hypot(q.a, q.b)

	dh := math.Atan2(q.b, q.a) - math.Atan2(p.b, p.a)
	switch {
	case dh > math.Pi:
		dh -= 2 * math.Pi
	case dh < -math.Pi:
		dh += 2 * math.Pi
	}

	dj := p.j - q.j
	dc := c1z - c2z
	dH := 2 * math.Sqrt(c1z*c2z) * math.Sin(dh/2)
	return math.Sqrt(dj*dj + dc*dc + dH*dH)
}
