package lines

import "math/cmplx"

// Hjerting returns the Voigt function H(a, v), the convolution of a
// Gaussian and a Lorentzian normalized so that H(0, 0) = 1.
//
// It evaluates the real part of the Faddeeva function w(v + ia) with
// the four-region rational approximation of Humlicek (1982), accurate
// to better than 1e-4 everywhere.
func Hjerting(a, v float64) float64 {
	if v < 0 {
		v = -v
	}

	t := complex(a, -v)
	s := v + a

	var w complex128
	switch {
	case s >= 15:
		w = t * 0.5641896 / (0.5 + t*t)

	case s >= 5.5:
		u := t * t
		w = t * (1.410474 + u*0.5641896) / (0.75 + u*(3.0+u))

	case a >= 0.195*v-0.176:
		w = (16.4955 + t*(20.20933+t*(11.96482+t*(3.778987+t*0.5642236)))) /
			(16.4955 + t*(38.82363+t*(39.27121+t*(21.69274+t*(6.699398+t)))))

	default:
		u := t * t
		w = cmplx.Exp(u) - t*(36183.31-u*(3321.9905-u*(1540.787-u*(219.0313-u*(35.76683-u*(1.320522-u*0.56419))))))/
			(32066.6-u*(24322.84-u*(9022.228-u*(2186.181-u*(364.2191-u*(61.57037-u*(1.841439-u)))))))
	}

	return real(w)
}
