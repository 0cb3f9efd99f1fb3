// Package vecgen renders the fixed-scalar vector types of package fixedvec
// from a single text template.
//
// A YAML config lists the dimensions (size, field names, output file), the
// scalar types (Go type, name suffix, kind) and the binary operators to
// emit. For every dimension the generator executes the embedded template
// once, producing one named-field struct per scalar type with the full
// method set, and formats the result with golang.org/x/tools/imports.
//
// Adding an operator to every generated type is a single config entry:
//
//	operators:
//	  - name: Add
//	    symbol: "+"
//	    doc: sum
//
// Operators may be restricted to scalar kinds (float, signed, unsigned),
// and may name a replacement function for float scalars where Go has no
// operator, such as math.Mod for %.
package vecgen
