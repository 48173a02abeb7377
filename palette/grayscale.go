package palette

// Grayscale returns the achromatic color with the same L* as c.
func Grayscale(c RGB) RGB {
	return ToRGB(Lab{ToLab(c).L(), 0, 0})
}

// ToGrayscale projects every color onto the neutral axis, keeping order.
func ToGrayscale(colors []RGB) []RGB {
	gray := make([]RGB, len(colors))
	for i, c := range colors {
		gray[i] = Grayscale(c)
	}
	return gray
}
