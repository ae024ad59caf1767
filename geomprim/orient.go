package geomprim

import "math/big"

// orientErrBound is the relative tolerance of the fast-path filter in
// Orient2D. It is many orders of magnitude looser than the few ULPs
// (about 2.2e-16 each) of rounding error the naive float64 determinant can
// carry, so a sign that passes the filter is certain; only near-collinear
// triples fall through to the exact path. See Shewchuk, "Adaptive Precision
// Floating-Point Arithmetic and Fast Robust Geometric Predicates" for the
// error analysis behind this kind of filter.
const orientErrBound = 1e-8

// Orient2D returns twice the signed area of the triangle (p, a, b).
//
//	> 0  b is counter-clockwise of a as seen from p
//	< 0  b is clockwise of a as seen from p
//	= 0  p, a, b are collinear
//
// The result is computed with a fast float64 path guarded by a conservative
// error bound; inputs close enough to collinear to be uncertain under that
// bound are re-evaluated exactly with big.Rat so that genuine collinearity
// is never reported as a small CW/CCW tilt (and vice versa).
func Orient2D(p, a, b Point) float64 {
	acx := a.X - p.X
	acy := a.Y - p.Y
	bcx := b.X - p.X
	bcy := b.Y - p.Y

	det := acx*bcy - acy*bcx

	// Conservative magnitude-based error bound: if det is large relative to
	// the magnitude of its operands, floating-point error cannot have
	// flipped its sign.
	bound := orientErrBound * (absF(acx*bcy) + absF(acy*bcx) + 1)
	if absF(det) > bound {
		return det
	}

	return orient2DExact(p, a, b)
}

// orient2DExact recomputes the orientation determinant with arbitrary
// precision, returning a float64 whose sign matches the exact result (the
// magnitude is not meaningful, only the sign and zero-ness are).
func orient2DExact(p, a, b Point) float64 {
	px := new(big.Rat).SetFloat64(p.X)
	py := new(big.Rat).SetFloat64(p.Y)
	ax := new(big.Rat).SetFloat64(a.X)
	ay := new(big.Rat).SetFloat64(a.Y)
	bx := new(big.Rat).SetFloat64(b.X)
	by := new(big.Rat).SetFloat64(b.Y)

	acx := new(big.Rat).Sub(ax, px)
	acy := new(big.Rat).Sub(ay, py)
	bcx := new(big.Rat).Sub(bx, px)
	bcy := new(big.Rat).Sub(by, py)

	left := new(big.Rat).Mul(acx, bcy)
	right := new(big.Rat).Mul(acy, bcx)
	det := new(big.Rat).Sub(left, right)

	switch det.Sign() {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return -1
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Collinear reports whether p, a, b lie on a common line.
func Collinear(p, a, b Point) bool {
	return Orient2D(p, a, b) == 0
}
