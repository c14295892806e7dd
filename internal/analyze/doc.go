// Package analyze loads Go packages and describes their named types
// without running them.
//
// It uses golang.org/x/tools/go/packages with go/types to build a type
// graph, then turns each named type into a repr descriptor following the
// encoding/json view of its values, the same view package derive takes by
// reflection.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/...)
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
