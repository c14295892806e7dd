package repr

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the variant tag of a descriptor.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindPrimitive // primitive
	KindLiteral   // literal
	KindArray     // array
	KindTuple     // tuple
	KindDict      // dict
	KindRecord    // record
	KindPartial   // partial
	KindUnion     // union
	KindClass     // class
	KindAnnot     // annot

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsComposite reports whether descriptors of kind k carry nested descriptors.
func (k Kind) IsComposite() bool {
	switch k {
	default:
		return false
	case KindArray, KindTuple, KindDict, KindRecord, KindPartial, KindUnion, KindClass:
		return true
	}
}
