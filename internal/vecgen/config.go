package vecgen

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scalar kinds a generated type can have. The kind decides which optional
// methods the template emits.
const (
	KindFloat    = "float"
	KindSigned   = "signed"
	KindUnsigned = "unsigned"
)

// Config describes one generated package: which dimensions, which scalar
// types and which operators to emit.
type Config struct {
	Package       string      `yaml:"package"`
	Source        string      `yaml:"-"`
	GenericImport string      `yaml:"generic_import"`
	SqrtImport    string      `yaml:"sqrt_import"`
	Dimensions    []Dimension `yaml:"dimensions"`
	Scalars       []Scalar    `yaml:"scalars"`
	Operators     []Operator  `yaml:"operators"`
}

// Dimension is one vector size and the names of its fields in order.
type Dimension struct {
	Size   int      `yaml:"size"`
	Fields []string `yaml:"fields"`
	File   string   `yaml:"file"`
}

// Scalar is one component type. The generated type name is
// "Vec" + size + suffix, e.g. Vec3f32.
type Scalar struct {
	Type   string `yaml:"type"`
	Suffix string `yaml:"suffix"`
	Kind   string `yaml:"kind"`
}

// Operator is a binary operator emitted twice per type: once with a vector
// operand (Name) and once with a scalar operand (Name + "Scalar").
type Operator struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Doc    string `yaml:"doc"`
	// FloatFunc replaces Symbol for float scalars, e.g. math.Mod for %.
	FloatFunc string   `yaml:"float_func"`
	Kinds     []string `yaml:"kinds"`
}

// Float reports whether the scalar is a floating-point type.
func (s Scalar) Float() bool { return s.Kind == KindFloat }

// Signed reports whether the scalar can be negated.
func (s Scalar) Signed() bool { return s.Kind == KindFloat || s.Kind == KindSigned }

// AppliesTo reports whether the operator is emitted for scalars of kind.
func (o Operator) AppliesTo(kind string) bool {
	return len(o.Kinds) == 0 || slices.Contains(o.Kinds, kind)
}

// Load reads and parses the config file at path, applies defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vecgen: failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Source = filepath.Base(path)
	return cfg, nil
}

// Parse parses a YAML config from data, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("vecgen: failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Package == "" {
		c.Package = "fixedvec"
	}
	if c.Source == "" {
		c.Source = "vecgen.yaml"
	}
	for i := range c.Dimensions {
		d := &c.Dimensions[i]
		if d.File == "" {
			d.File = fmt.Sprintf("vec%d_gen.go", d.Size)
		}
	}
	for i := range c.Operators {
		if c.Operators[i].Doc == "" {
			c.Operators[i].Doc = "result"
		}
	}
}

// Validate reports the first inconsistency in c.
func (c *Config) Validate() error {
	if c.GenericImport == "" {
		return fmt.Errorf("vecgen: generic_import is required")
	}
	if c.SqrtImport == "" {
		return fmt.Errorf("vecgen: sqrt_import is required")
	}
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("vecgen: no dimensions configured")
	}
	if len(c.Scalars) == 0 {
		return fmt.Errorf("vecgen: no scalars configured")
	}

	files := make(map[string]bool)
	for _, d := range c.Dimensions {
		if d.Size < 2 || d.Size > 4 {
			return fmt.Errorf("vecgen: dimension %d: size must be between 2 and 4", d.Size)
		}
		if len(d.Fields) != d.Size {
			return fmt.Errorf("vecgen: dimension %d: got %d field names", d.Size, len(d.Fields))
		}
		if err := validateFields(d); err != nil {
			return err
		}
		if files[d.File] {
			return fmt.Errorf("vecgen: dimension %d: duplicate output file %q", d.Size, d.File)
		}
		files[d.File] = true
	}

	suffixes := make(map[string]bool)
	for _, s := range c.Scalars {
		if s.Type == "" || s.Suffix == "" {
			return fmt.Errorf("vecgen: scalar %q: type and suffix are required", s.Type)
		}
		if !validKind(s.Kind) {
			return fmt.Errorf("vecgen: scalar %s: unknown kind %q", s.Type, s.Kind)
		}
		if suffixes[s.Suffix] {
			return fmt.Errorf("vecgen: scalar %s: duplicate suffix %q", s.Type, s.Suffix)
		}
		suffixes[s.Suffix] = true
	}

	for _, o := range c.Operators {
		if o.Name == "" || o.Symbol == "" {
			return fmt.Errorf("vecgen: operator %q: name and symbol are required", o.Name)
		}
		for _, k := range o.Kinds {
			if !validKind(k) {
				return fmt.Errorf("vecgen: operator %s: unknown kind %q", o.Name, k)
			}
		}
	}
	return nil
}

// validateFields checks that every field name is an exported identifier
// whose lower-case form is usable as a parameter name, and that neither form
// repeats. The receiver name v is reserved.
func validateFields(d Dimension) error {
	seen := make(map[string]bool)
	for _, f := range d.Fields {
		if !token.IsIdentifier(f) || !token.IsExported(f) {
			return fmt.Errorf("vecgen: dimension %d: field %q is not an exported identifier", d.Size, f)
		}
		l := strings.ToLower(f)
		if !token.IsIdentifier(l) || l == "v" {
			return fmt.Errorf("vecgen: dimension %d: field %q lowers to reserved name %q", d.Size, f, l)
		}
		if seen[l] {
			return fmt.Errorf("vecgen: dimension %d: duplicate field %q", d.Size, f)
		}
		seen[l] = true
	}
	return nil
}

func validKind(k string) bool {
	return k == KindFloat || k == KindSigned || k == KindUnsigned
}
