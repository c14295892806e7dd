// Package repr provides a closed algebra of shape descriptors.
//
// A descriptor describes the shape of some other value; it is never a value
// of that shape itself. Consumers (decoders, encoders, schema exporters)
// traverse descriptors to derive behavior, either with a type switch over
// the variant types, with Accept and a Visitor, or with Walk.
//
// Variants:
//   - Primitive: boolean, string, number, any, unknown
//   - Literal: exactly one value (nil is null, UndefinedValue is undefined)
//   - Array, Dict: one inner descriptor
//   - Tuple, Union, Class: an ordered sequence of descriptors
//   - Record: an ordered set of named fields, with Extend, Pick and Omit
//   - Partial: a Record whose fields are all optional
//   - Annot: the extension point, resolved on demand with ToRepresentable
//
// Descriptors are immutable. Constructors copy their inputs, accessors
// return copies, and record transforms return new records, so descriptors
// can be shared between goroutines without synchronization.
package repr
