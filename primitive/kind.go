package primitive

import (
	"reflect"
	"time"

	"github.com/pkg/errors"
)

//go:generate go tool stringer -type=KindEnum -linecomment -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBoolean // boolean
	KindString  // string
	KindNumber  // number
	KindAny     // any
	KindUnknown // unknown

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var ErrUnknownKind = errors.New("unknown primitive kind")

// IsValid reports whether k is one of the declared primitive kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsTop reports whether k accepts every value (any and unknown).
func (k KindEnum) IsTop() bool {
	switch k {
	default:
		return false
	case KindAny, KindUnknown:
		return true
	}
}

// IsScalar reports whether k describes a concrete scalar domain.
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBoolean, KindString, KindNumber:
		return true
	}
}

// Parse maps a tag name ("boolean", "string", ...) to its kind.
func Parse(name string) (KindEnum, error) {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// FromReflectType returns the primitive kind describing values of rtype,
// or zero when rtype is not a scalar.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// encoded as RFC 3339 text
	if rtype == reflect.TypeFor[time.Time]() {
		return KindString
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Interface:
		if rtype.NumMethod() == 0 {
			return KindAny
		}

		return KindUnknown
	}
}
