package derive

import (
	"encoding"
	"reflect"

	"github.com/pkg/errors"

	"typerep/repr"
)

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// genMap accepts the key types encoding/json can write as object keys.
func (g *Deriver) genMap(t reflect.Type) (repr.Descriptor, error) {
	if !isTextKey(t.Key()) {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: key %s", typeStr(t), typeStr(t.Key()))
	}

	elem, err := g.Derive(t.Elem())
	if err != nil {
		return nil, err
	}

	return repr.Dict(elem), nil
}

func isTextKey(k reflect.Type) bool {
	switch k.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}

	return k.Implements(textMarshalerType)
}
