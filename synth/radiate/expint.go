package radiate

import "math"

// Exponential integrals E_n(x) for the formal solution of the transfer
// equation. E1 follows Abramowitz & Stegun 5.1.53 (series, x < 1) and
// 5.1.56 (rational, x >= 1); higher orders use the downward part of the
// recurrence E_{n+1}(x) = (e^-x - x E_n(x)) / n.

const eulerGamma = 0.5772156649015329

func expIntE1(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	if x < 1 {
		return -eulerGamma - math.Log(x) +
			x*(1+x*(-0.25+x*(1.0/18+x*(-1.0/96+x*(1.0/600)))))
	}

	num := x*x + 2.334733*x + 0.250621
	den := x*x + 3.330657*x + 1.681534

	return math.Exp(-x) / x * num / den
}

// ExpIntE2 returns E2(x); E2(0) = 1.
func ExpIntE2(x float64) float64 {
	if x == 0 {
		return 1
	}
	if x < 0 {
		return math.NaN()
	}

	return math.Exp(-x) - x*expIntE1(x)
}

// ExpIntE3 returns E3(x); E3(0) = 1/2.
func ExpIntE3(x float64) float64 {
	if x == 0 {
		return 0.5
	}
	if x < 0 {
		return math.NaN()
	}

	return (math.Exp(-x) - x*ExpIntE2(x)) / 2
}
