package catalog

//go:generate go tool stringer -type=OriginEnum -linecomment -output=origin_string.go

// OriginEnum tells where a catalog entry came from.
type OriginEnum int

const (
	_ OriginEnum = iota // skip zero value, use it as a default (invalid) value for OriginEnum

	OriginBuiltin // builtin
	OriginDerived // derived
	OriginFile    // file
	OriginPackage // package

	// OriginTotal is a constant that represents the total number of origins defined
	OriginTotal = int(iota)
)
