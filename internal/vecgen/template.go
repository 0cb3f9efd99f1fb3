package vecgen

import (
	_ "embed"
	"fmt"
	"path"
	"strconv"
	"strings"
	"text/template"
)

//go:embed vec.go.tmpl
var vecTemplate string

// fileData is the template input for one generated file.
type fileData struct {
	*Config
	Dim        Dimension
	GenericPkg string
	SqrtPkg    string
}

var funcs = template.FuncMap{
	"typeName": typeName,
	"each":     each,
	"unary":    unary,
	"binary":   binary,
}

func parseTemplate() (*template.Template, error) {
	t, err := template.New("vec").Funcs(funcs).Parse(vecTemplate)
	if err != nil {
		return nil, fmt.Errorf("vecgen: parse template: %w", err)
	}
	return t, nil
}

// typeName returns the generated type name, e.g. Vec3f32.
func typeName(d Dimension, s Scalar) string {
	return "Vec" + strconv.Itoa(d.Size) + s.Suffix
}

// each expands format once per field and joins the results with sep.
// Within format, {f} is the field name, {l} its lower-case form and {i} its
// index.
func each(fields []string, format, sep string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		r := strings.NewReplacer("{f}", f, "{l}", strings.ToLower(f), "{i}", strconv.Itoa(i))
		parts[i] = r.Replace(format)
	}
	return strings.Join(parts, sep)
}

// unary returns the expression fn(arg) evaluated in float64 and converted
// back to the scalar type.
func unary(s Scalar, fn, arg string) string {
	if s.Type == "float64" {
		return fn + "(" + arg + ")"
	}
	return s.Type + "(" + fn + "(float64(" + arg + ")))"
}

// binary returns the expression applying op to lhs and rhs for scalar s.
func binary(s Scalar, op Operator, lhs, rhs string) string {
	if s.Float() && op.FloatFunc != "" {
		if s.Type == "float64" {
			return op.FloatFunc + "(" + lhs + ", " + rhs + ")"
		}
		return s.Type + "(" + op.FloatFunc + "(float64(" + lhs + "), float64(" + rhs + ")))"
	}
	return lhs + " " + op.Symbol + " " + rhs
}

func newFileData(cfg *Config, d Dimension) fileData {
	return fileData{
		Config:     cfg,
		Dim:        d,
		GenericPkg: path.Base(cfg.GenericImport),
		SqrtPkg:    path.Base(cfg.SqrtImport),
	}
}
