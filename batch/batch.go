package batch

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/manyvecs/internal/fastmath"
	"github.com/cwbudde/manyvecs/vector"
)

// Magnitudes2 writes |vs[i]| into dst[i].
func Magnitudes2(dst []float64, vs []vector.Vec2[float64]) {
	checkLen("Magnitudes2", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(2, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i] = v.Components()
	}

	vecmath.Power(dst, p[0], p[1])
	sqrtInPlace(dst)
	putPlanes(buf)
}

// Magnitudes3 writes |vs[i]| into dst[i].
func Magnitudes3(dst []float64, vs []vector.Vec3[float64]) {
	checkLen("Magnitudes3", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(4, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i], p[2][i] = v.Components()
	}

	sumSquares(dst, p[3], p[:3])
	sqrtInPlace(dst)
	putPlanes(buf)
}

// Magnitudes4 writes |vs[i]| into dst[i].
func Magnitudes4(dst []float64, vs []vector.Vec4[float64]) {
	checkLen("Magnitudes4", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(5, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i], p[2][i], p[3][i] = v.Components()
	}

	sumSquares(dst, p[4], p[:4])
	sqrtInPlace(dst)
	putPlanes(buf)
}

// Normalize2 writes vs[i] / |vs[i]| into dst[i]. dst may alias vs.
func Normalize2(dst, vs []vector.Vec2[float64]) {
	checkLen("Normalize2", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(3, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i] = v.Components()
	}

	vecmath.Power(p[2], p[0], p[1])
	sqrtInPlace(p[2])
	reciprocalInPlace(p[2])
	vecmath.MulBlockInPlace(p[0], p[2])
	vecmath.MulBlockInPlace(p[1], p[2])

	for i := range dst {
		dst[i] = vector.NewVec2(p[0][i], p[1][i])
	}
	putPlanes(buf)
}

// Normalize3 writes vs[i] / |vs[i]| into dst[i]. dst may alias vs.
func Normalize3(dst, vs []vector.Vec3[float64]) {
	checkLen("Normalize3", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(5, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i], p[2][i] = v.Components()
	}

	sumSquares(p[3], p[4], p[:3])
	sqrtInPlace(p[3])
	reciprocalInPlace(p[3])
	for _, c := range p[:3] {
		vecmath.MulBlockInPlace(c, p[3])
	}

	for i := range dst {
		dst[i] = vector.NewVec3(p[0][i], p[1][i], p[2][i])
	}
	putPlanes(buf)
}

// Normalize4 writes vs[i] / |vs[i]| into dst[i]. dst may alias vs.
func Normalize4(dst, vs []vector.Vec4[float64]) {
	checkLen("Normalize4", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(6, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i], p[2][i], p[3][i] = v.Components()
	}

	sumSquares(p[4], p[5], p[:4])
	sqrtInPlace(p[4])
	reciprocalInPlace(p[4])
	for _, c := range p[:4] {
		vecmath.MulBlockInPlace(c, p[4])
	}

	for i := range dst {
		dst[i] = vector.NewVec4(p[0][i], p[1][i], p[2][i], p[3][i])
	}
	putPlanes(buf)
}

// Scale2 writes vs[i] * s into dst[i]. dst may alias vs.
func Scale2(dst, vs []vector.Vec2[float64], s float64) {
	checkLen("Scale2", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(2, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i] = v.Components()
	}
	for _, c := range p {
		vecmath.ScaleBlock(c, c, s)
	}

	for i := range dst {
		dst[i] = vector.NewVec2(p[0][i], p[1][i])
	}
	putPlanes(buf)
}

// Scale3 writes vs[i] * s into dst[i]. dst may alias vs.
func Scale3(dst, vs []vector.Vec3[float64], s float64) {
	checkLen("Scale3", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(3, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i], p[2][i] = v.Components()
	}
	for _, c := range p {
		vecmath.ScaleBlock(c, c, s)
	}

	for i := range dst {
		dst[i] = vector.NewVec3(p[0][i], p[1][i], p[2][i])
	}
	putPlanes(buf)
}

// Scale4 writes vs[i] * s into dst[i]. dst may alias vs.
func Scale4(dst, vs []vector.Vec4[float64], s float64) {
	checkLen("Scale4", len(vs), len(dst))
	if len(vs) == 0 {
		return
	}

	p, buf := getPlanes(4, len(vs))
	for i, v := range vs {
		p[0][i], p[1][i], p[2][i], p[3][i] = v.Components()
	}
	for _, c := range p {
		vecmath.ScaleBlock(c, c, s)
	}

	for i := range dst {
		dst[i] = vector.NewVec4(p[0][i], p[1][i], p[2][i], p[3][i])
	}
	putPlanes(buf)
}

// Add2 writes a[i] + b[i] into dst[i]. dst may alias a or b.
func Add2(dst, a, b []vector.Vec2[float64]) {
	checkLen("Add2", len(a), len(b), len(dst))
	if len(a) == 0 {
		return
	}

	p, buf := getPlanes(4, len(a))
	for i := range a {
		p[0][i], p[1][i] = a[i].Components()
		p[2][i], p[3][i] = b[i].Components()
	}
	vecmath.AddBlockInPlace(p[0], p[2])
	vecmath.AddBlockInPlace(p[1], p[3])

	for i := range dst {
		dst[i] = vector.NewVec2(p[0][i], p[1][i])
	}
	putPlanes(buf)
}

// Add3 writes a[i] + b[i] into dst[i]. dst may alias a or b.
func Add3(dst, a, b []vector.Vec3[float64]) {
	checkLen("Add3", len(a), len(b), len(dst))
	if len(a) == 0 {
		return
	}

	p, buf := getPlanes(6, len(a))
	for i := range a {
		p[0][i], p[1][i], p[2][i] = a[i].Components()
		p[3][i], p[4][i], p[5][i] = b[i].Components()
	}
	for c := range 3 {
		vecmath.AddBlockInPlace(p[c], p[c+3])
	}

	for i := range dst {
		dst[i] = vector.NewVec3(p[0][i], p[1][i], p[2][i])
	}
	putPlanes(buf)
}

// Add4 writes a[i] + b[i] into dst[i]. dst may alias a or b.
func Add4(dst, a, b []vector.Vec4[float64]) {
	checkLen("Add4", len(a), len(b), len(dst))
	if len(a) == 0 {
		return
	}

	p, buf := getPlanes(8, len(a))
	for i := range a {
		p[0][i], p[1][i], p[2][i], p[3][i] = a[i].Components()
		p[4][i], p[5][i], p[6][i], p[7][i] = b[i].Components()
	}
	for c := range 4 {
		vecmath.AddBlockInPlace(p[c], p[c+4])
	}

	for i := range dst {
		dst[i] = vector.NewVec4(p[0][i], p[1][i], p[2][i], p[3][i])
	}
	putPlanes(buf)
}

// sumSquares writes the sum of squares of planes into dst, using tmp as
// scratch. planes must hold at least two entries.
func sumSquares(dst, tmp []float64, planes [][]float64) {
	vecmath.Power(dst, planes[0], planes[1])
	for _, c := range planes[2:] {
		vecmath.MulBlock(tmp, c, c)
		vecmath.AddBlockInPlace(dst, tmp)
	}
}

// sqrtInPlace goes through fastmath so every dimension shares the scalar
// functions' square root backend.
func sqrtInPlace(x []float64) {
	for i, v := range x {
		x[i] = fastmath.Sqrt(v)
	}
}

func reciprocalInPlace(x []float64) {
	for i, v := range x {
		x[i] = 1 / v
	}
}
