package noise

// LinearInterp interpolates linearly between n0 and n1 by weight a,
// where a = 0 yields n0 and a = 1 yields n1.
func LinearInterp(n0, n1, a float64) float64 {
	return ((1.0 - a) * n0) + (a * n1)
}

// CubicInterp interpolates between n1 and n2 along a cubic that also
// passes near the outer neighbors n0 and n3. a = 0 yields n1 exactly
// and a = 1 yields n2 exactly.
func CubicInterp(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1
	return p*a*a*a + q*a*a + r*a + s
}

// SCurve3 maps a in [0, 1] onto the cubic S-curve 3a^2 - 2a^3. The
// first derivative vanishes at both ends.
func SCurve3(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

// SCurve5 maps a in [0, 1] onto the quintic S-curve 6a^5 - 15a^4 + 10a^3.
// First and second derivatives vanish at both ends.
func SCurve5(a float64) float64 {
	a3 := a * a * a
	a4 := a3 * a
	a5 := a4 * a
	return 6.0*a5 - 15.0*a4 + 10.0*a3
}
