package fixedvec

//go:generate go run ../cmd/vecgen -config vecgen.yaml -out .
