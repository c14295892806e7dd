package annot

import (
	"sync"

	"typerep/repr"
)

// LazyRepr defers building a shape until a consumer first resolves it. A
// lazy node may refer to itself through its own thunk, which is how
// recursive shapes are expressed: the tree stays finite and each
// resolution unfolds one level.
type LazyRepr struct {
	repr.AnnotBase
	once    sync.Once
	thunk   func() repr.Descriptor
	value   repr.Descriptor
	failure any
}

func Lazy(thunk func() repr.Descriptor) *LazyRepr {
	if thunk == nil {
		panic("lazy: nil thunk")
	}

	return &LazyRepr{thunk: thunk}
}

// ToRepresentable calls the thunk once and returns its result from then on.
// If the thunk panics, this and every later call panic with the same value.
// The thunk must not resolve l itself.
func (l *LazyRepr) ToRepresentable() repr.Descriptor {
	l.once.Do(func() {
		defer func() {
			l.failure = recover()
			l.thunk = nil
		}()

		l.value = l.thunk()
	})

	if l.failure != nil {
		panic(l.failure)
	}

	return l.value
}

// Recursive builds a lazy shape whose body can refer to the shape itself.
func Recursive(body func(self repr.Descriptor) repr.Descriptor) *LazyRepr {
	var self *LazyRepr
	self = Lazy(func() repr.Descriptor { return body(self) })

	return self
}
