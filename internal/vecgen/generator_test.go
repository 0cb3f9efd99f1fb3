package vecgen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEach(t *testing.T) {
	fields := []string{"X", "Y", "Z"}

	assert.Equal(t, "x, y, z", each(fields, "{l}", ", "))
	assert.Equal(t, "v.X*v.X + v.Y*v.Y + v.Z*v.Z", each(fields, "v.{f}*v.{f}", " + "))
	assert.Equal(t, "a[0], a[1], a[2]", each(fields, "a[{i}]", ", "))
	assert.Equal(t, "%v, %v, %v", each(fields, "%v", ", "))
}

func TestUnary(t *testing.T) {
	f64 := Scalar{Type: "float64", Suffix: "f64", Kind: KindFloat}
	f32 := Scalar{Type: "float32", Suffix: "f32", Kind: KindFloat}

	assert.Equal(t, "math.Floor(v.X)", unary(f64, "math.Floor", "v.X"))
	assert.Equal(t, "float32(math.Floor(float64(v.X)))", unary(f32, "math.Floor", "v.X"))
}

func TestBinary(t *testing.T) {
	f64 := Scalar{Type: "float64", Suffix: "f64", Kind: KindFloat}
	f32 := Scalar{Type: "float32", Suffix: "f32", Kind: KindFloat}
	i8 := Scalar{Type: "int8", Suffix: "i8", Kind: KindSigned}
	rem := Operator{Name: "Rem", Symbol: "%", FloatFunc: "math.Mod"}
	add := Operator{Name: "Add", Symbol: "+"}

	assert.Equal(t, "v.X + o.X", binary(f64, add, "v.X", "o.X"))
	assert.Equal(t, "v.X % o.X", binary(i8, rem, "v.X", "o.X"))
	assert.Equal(t, "math.Mod(v.X, s)", binary(f64, rem, "v.X", "s"))
	assert.Equal(t, "float32(math.Mod(float64(v.X), float64(s)))", binary(f32, rem, "v.X", "s"))
}

func TestTypeName(t *testing.T) {
	d := Dimension{Size: 3, Fields: []string{"X", "Y", "Z"}}
	assert.Equal(t, "Vec3u16", typeName(d, Scalar{Type: "uint16", Suffix: "u16", Kind: KindUnsigned}))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(&Config{}, nil)
	require.Error(t, err)
}

func TestRenderRejectsDuplicateFields(t *testing.T) {
	_, err := Parse([]byte(strings.Replace(minimalConfig, "fields: [X, Y]", "fields: [X, X]", 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate field "X"`)

	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)
	cfg.Dimensions[0].Fields = []string{"X", "X"}
	_, err = New(cfg, nil)
	require.Error(t, err)
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)
	g, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	return g
}

func TestRender(t *testing.T) {
	files, err := newTestGenerator(t).Render()
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "vec2_gen.go", f.Name)
	assert.Equal(t, 2, f.Size)
	assert.Equal(t, []string{"Vec2f32", "Vec2u8"}, f.Types)

	src := string(f.Content)
	_, err = parser.ParseFile(token.NewFileSet(), f.Name, f.Content, parser.AllErrors)
	require.NoError(t, err, src)

	assert.True(t, strings.HasPrefix(src, "// Code generated by vecgen from vecgen.yaml. DO NOT EDIT."))
	for _, want := range []string{
		"package fixedvec",
		"type Vec2f32 struct",
		"func NewVec2f32(x, y float32) Vec2f32",
		"func Vec2u8FromSlice(s []uint8) (Vec2u8, error)",
		"func (v Vec2f32) Add(o Vec2f32) Vec2f32",
		"func (v Vec2u8) AddScalar(s uint8) Vec2u8",
		"func (v Vec2u8) Or(o Vec2u8) Vec2u8",
		"return Vec2u8{v.X | o.X, v.Y | o.Y}",
		"func (v Vec2f32) Magnitude() float32",
		"float32(fastmath.Sqrt(float64(v.MagnitudeSq())))",
		"func (v Vec2f32) Perp() Vec2f32",
		`fmt.Sprintf("Vec2f32(%v, %v)", v.X, v.Y)`,
	} {
		assert.Contains(t, src, want)
	}

	assert.NotContains(t, src, "func (v Vec2f32) Or(")
	assert.NotContains(t, src, "func (v Vec2u8) Neg(")
	assert.NotContains(t, src, "func (v Vec2u8) Magnitude(")
}

func TestRenderDropsUnusedImports(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)
	cfg.Scalars = []Scalar{{Type: "int", Suffix: "i", Kind: KindSigned}}

	g, err := New(cfg, nil)
	require.NoError(t, err)
	files, err := g.Render()
	require.NoError(t, err)

	src := string(files[0].Content)
	assert.NotContains(t, src, `"math"`)
	assert.NotContains(t, src, "internal/fastmath")
	assert.Contains(t, src, `"example.com/m/vector"`)
}

func TestWriteTo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newTestGenerator(t).WriteTo(dir))

	data, err := os.ReadFile(filepath.Join(dir, "vec2_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "type Vec2u8 struct")
}

func TestWriteToMissingDir(t *testing.T) {
	err := newTestGenerator(t).WriteTo(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vecgen: write")
}

func TestRenderMatchesCheckedInSources(t *testing.T) {
	dir := filepath.Join("..", "..", "fixedvec")
	cfg, err := Load(filepath.Join(dir, "vecgen.yaml"))
	require.NoError(t, err)

	g, err := New(cfg, nil)
	require.NoError(t, err)
	files, err := g.Render()
	require.NoError(t, err)

	for _, f := range files {
		want, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(f.Content), "%s is stale, run go generate ./fixedvec", f.Name)
	}
}
