package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typerep/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(true)))
	fmt.Println(primitive.FromReflectType(reflect.TypeFor[any]()))
	fmt.Println(primitive.FromReflectType(reflect.TypeFor[error]()))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// number
	// string
	// number
	// string
	// number
	// string
	// boolean
	// any
	// unknown
	// KindEnum(0)
}

func TestParse(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		parsed, err := primitive.Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.True(t, parsed.IsValid())
	}

	_, err := primitive.Parse("integer")
	require.ErrorIs(t, err, primitive.ErrUnknownKind)
	assert.Contains(t, err.Error(), `"integer"`)
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	assert.False(t, primitive.KindEnum(0).IsValid())
	assert.False(t, primitive.KindEnum(primitive.KindTotal).IsValid())

	assert.True(t, primitive.KindAny.IsTop())
	assert.True(t, primitive.KindUnknown.IsTop())
	assert.False(t, primitive.KindString.IsTop())

	assert.True(t, primitive.KindNumber.IsScalar())
	assert.False(t, primitive.KindUnknown.IsScalar())
}
