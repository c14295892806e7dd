package options

import "github.com/pkg/errors"

type StrictEnum int

const (
	StrictPick                  StrictEnum = 1 << iota // pick: reject keys absent from the record instead of skipping them
	StrictEmptyUnion                                   // check: report unions with no alternatives
	StrictDuplicateAlternatives                        // check: report structurally equal union alternatives

	StrictAll  = (1 << iota) - 1 // all strictness flags combined
	StrictNone = 0               // permissive defaults
)

const (
	// DefaultMaxResolveDepth bounds how many Annot steps Resolve follows.
	DefaultMaxResolveDepth = 32
	// MaxResolveDepthLimit is the largest bound a Config may request.
	MaxResolveDepthLimit = 1 << 16
)

var ErrInvalidConfig = errors.New("invalid options")

type Config struct {
	MaxResolveDepth int
	Strict          StrictEnum
}

func Default() Config {
	return Config{
		MaxResolveDepth: DefaultMaxResolveDepth,
		Strict:          StrictNone,
	}
}

// Has reports whether every flag in f is enabled.
func (c Config) Has(f StrictEnum) bool {
	return c.Strict&f == f
}

func (c Config) Validate() error {
	if c.MaxResolveDepth < 1 || c.MaxResolveDepth > MaxResolveDepthLimit {
		return errors.Wrapf(ErrInvalidConfig, "max resolve depth %d is out of [1, %d]",
			c.MaxResolveDepth, MaxResolveDepthLimit)
	}

	if c.Strict&^StrictAll != 0 {
		return errors.Wrapf(ErrInvalidConfig, "unknown strict flags %#x", int(c.Strict&^StrictAll))
	}

	return nil
}
