package palette

import "math"

// CMC l:c weighting used for acceptability judgements.
const (
	cmcL = 2.0
	cmcC = 1.0
)

// deltaECMC computes CMC l:c with c1 as the reference. Swapping the
// arguments generally gives a different value.
func deltaECMC(c1, c2 RGB) float64 {
	ref, sample := ToLab(c1), ToLab(c2)
	return cmcLC(ref, sample, cmcL, cmcC)
}

func cmcLC(ref, sample Lab, l, c float64) float64 {
	L1, a1, b1 := ref.L(), ref.A(), ref.B()
	L2, a2, b2 := sample.L(), sample.A(), sample.B()

	C1 := math.Hypot(a1, b1)
	C2 := math.Hypot(a2, b2)

	dL := L1 - L2
	dC := C1 - C2
	da := a1 - a2
	db := b1 - b2
	dH2 := da*da + db*db - dC*dC
	if dH2 < 0 {
		dH2 = 0
	}

	h1 := math.Atan2(b1, a1) * 180 / math.Pi
	if h1 < 0 {
		h1 += 360
	}

	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(radians(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(radians(h1+35)))
	}

	sl := 0.511
	if L1 >= 16 {
		sl = 0.040975 * L1 / (1 + 0.01765*L1)
	}
	sc := 0.0638*C1/(1+0.0131*C1) + 0.638

	c4 := C1 * C1 * C1 * C1
	f := math.Sqrt(c4 / (c4 + 1900))
	sh := sc * (f*t + 1 - f)

	return math.Sqrt(sq(dL/(l*sl)) + sq(dC/(c*sc)) + dH2/(sh*sh))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func sq(v float64) float64 {
	return v * v
}
