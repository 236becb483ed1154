package vecjson

import "strconv"

// appendFloat formats v the way the teacher's appendFloat did: shortest
// round-trippable representation, 'g'-style so large/small magnitudes fall
// back to exponent notation instead of runs of zeros.
//
// The teacher's own appendfloat_f.go hand-ported a Ryu implementation; that
// file called into an internal decimalSlice/ryuFtoaShortest pair that was
// never actually retrieved alongside it, so rather than guess at undefined
// symbols this repository uses the teacher's own documented fallback
// (strconv, which is itself Ryu-based in the Go runtime since Go 1.15).
func appendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}
