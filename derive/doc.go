// Package derive builds repr descriptors from Go types by reflection,
// following the encoding/json view of a value:
//   - bool, string, numeric kinds and time.Time map to primitives
//   - []byte maps to string (base64 text)
//   - slices map to arrays, fixed-size arrays to tuples
//   - maps with string or integer keys map to dicts
//   - structs map to records named by their json tags, with embedded
//     structs flattened into the outer record
//   - pointers map to nullable shapes, interfaces to any or unknown
//
// Types can supply their own shape by implementing Shaper.
package derive
