package vecgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
generic_import: example.com/m/vector
sqrt_import: example.com/m/internal/fastmath
dimensions:
  - size: 2
    fields: [X, Y]
scalars:
  - {type: float32, suffix: f32, kind: float}
  - {type: uint8, suffix: u8, kind: unsigned}
operators:
  - {name: Add, symbol: "+"}
  - {name: Or, symbol: "|", doc: bitwise OR, kinds: [signed, unsigned]}
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "fixedvec", cfg.Package)
	assert.Equal(t, "vecgen.yaml", cfg.Source)
	require.Len(t, cfg.Dimensions, 1)
	assert.Equal(t, "vec2_gen.go", cfg.Dimensions[0].File)
	require.Len(t, cfg.Operators, 2)
	assert.Equal(t, "result", cfg.Operators[0].Doc)
	assert.Equal(t, "bitwise OR", cfg.Operators[1].Doc)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("dimensions: [size: 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Parse([]byte(minimalConfig))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing generic import", func(c *Config) { c.GenericImport = "" }, "generic_import is required"},
		{"missing sqrt import", func(c *Config) { c.SqrtImport = "" }, "sqrt_import is required"},
		{"no dimensions", func(c *Config) { c.Dimensions = nil }, "no dimensions"},
		{"no scalars", func(c *Config) { c.Scalars = nil }, "no scalars"},
		{"size too small", func(c *Config) { c.Dimensions[0].Size = 1 }, "size must be between 2 and 4"},
		{"size too large", func(c *Config) { c.Dimensions[0].Size = 5 }, "size must be between 2 and 4"},
		{"field count", func(c *Config) { c.Dimensions[0].Fields = []string{"X"} }, "got 1 field names"},
		{"empty fields", func(c *Config) { c.Dimensions[0].Fields = nil }, "got 0 field names"},
		{"duplicate field", func(c *Config) { c.Dimensions[0].Fields = []string{"X", "X"} }, `duplicate field "X"`},
		{"duplicate field case", func(c *Config) { c.Dimensions[0].Fields = []string{"Ab", "AB"} }, `duplicate field "AB"`},
		{"empty field", func(c *Config) { c.Dimensions[0].Fields = []string{"X", ""} }, "is not an exported identifier"},
		{"unexported field", func(c *Config) { c.Dimensions[0].Fields = []string{"x", "Y"} }, `field "x" is not an exported identifier`},
		{"invalid field", func(c *Config) { c.Dimensions[0].Fields = []string{"X", "2Y"} }, `field "2Y" is not an exported identifier`},
		{"keyword field", func(c *Config) { c.Dimensions[0].Fields = []string{"X", "Type"} }, `lowers to reserved name "type"`},
		{"receiver field", func(c *Config) { c.Dimensions[0].Fields = []string{"U", "V"} }, `lowers to reserved name "v"`},
		{"duplicate file", func(c *Config) {
			c.Dimensions = append(c.Dimensions, Dimension{Size: 3, Fields: []string{"X", "Y", "Z"}, File: "vec2_gen.go"})
		}, "duplicate output file"},
		{"missing suffix", func(c *Config) { c.Scalars[0].Suffix = "" }, "type and suffix are required"},
		{"unknown kind", func(c *Config) { c.Scalars[0].Kind = "complex" }, `unknown kind "complex"`},
		{"duplicate suffix", func(c *Config) { c.Scalars[1].Suffix = "f32" }, `duplicate suffix "f32"`},
		{"operator without symbol", func(c *Config) { c.Operators[0].Symbol = "" }, "name and symbol are required"},
		{"operator unknown kind", func(c *Config) { c.Operators[1].Kinds = []string{"bool"} }, `unknown kind "bool"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "vecgen: ")
		})
	}
}

func TestScalarKinds(t *testing.T) {
	tests := []struct {
		kind           string
		float, signed bool
	}{
		{KindFloat, true, true},
		{KindSigned, false, true},
		{KindUnsigned, false, false},
	}
	for _, tt := range tests {
		s := Scalar{Type: "x", Suffix: "x", Kind: tt.kind}
		assert.Equal(t, tt.float, s.Float(), tt.kind)
		assert.Equal(t, tt.signed, s.Signed(), tt.kind)
	}
}

func TestOperatorAppliesTo(t *testing.T) {
	all := Operator{Name: "Add", Symbol: "+"}
	ints := Operator{Name: "And", Symbol: "&", Kinds: []string{KindSigned, KindUnsigned}}

	assert.True(t, all.AppliesTo(KindFloat))
	assert.True(t, all.AppliesTo(KindUnsigned))
	assert.False(t, ints.AppliesTo(KindFloat))
	assert.True(t, ints.AppliesTo(KindSigned))
}

func TestLoadSetsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vectors.yaml", cfg.Source)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFixedvecConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "fixedvec", "vecgen.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "fixedvec", cfg.Package)
	assert.Len(t, cfg.Dimensions, 3)
	assert.Len(t, cfg.Scalars, 12)

	var names []string
	for _, o := range cfg.Operators {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"Add", "Sub", "Mul", "Div", "Rem", "And", "Or", "Xor", "AndNot", "Shl", "Shr"}, names)
}
