package authority

import (
	"strconv"

	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

// NameResolver is a total function from a 1-based registry index to an
// optional string. Migration evaluates an ordered chain of these to
// decide the id (and separately the name) of an entry whose data was
// pulled from a previously-authoritative implementation.
type NameResolver func(index int) (string, bool)

// ResolverChain evaluates resolvers in priority order and returns the
// first hit.
type ResolverChain []NameResolver

// Resolve returns the first resolver result for the index.
func (c ResolverChain) Resolve(index int) (string, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if v, ok := r(index); ok {
			return v, true
		}
	}
	return "", false
}

// ForeignTable is the id/name table of a third-party implementation of
// the same registry concept. Foreign tables are keyed by that
// implementation's own 0-based offset convention; resolvers convert
// from this registry's 1-based index space.
type ForeignTable interface {
	IDByOffset(offset int) (string, bool)
	NameByOffset(offset int) (string, bool)
}

// BuiltinIDResolver resolves ids from the well-known built-in table.
func BuiltinIDResolver() NameResolver {
	return func(index int) (string, bool) {
		return palette.BuiltinIDAt(index)
	}
}

// BuiltinNameResolver resolves names from the well-known built-in table.
func BuiltinNameResolver() NameResolver {
	return func(index int) (string, bool) {
		return palette.BuiltinNameAt(index)
	}
}

// ForeignIDResolver resolves ids from a foreign table, converting the
// 1-based index to the table's 0-based offset. A nil table resolves
// nothing.
func ForeignIDResolver(table ForeignTable) NameResolver {
	return func(index int) (string, bool) {
		if table == nil {
			return "", false
		}
		return table.IDByOffset(index - 1)
	}
}

// ForeignNameResolver resolves names from a foreign table.
func ForeignNameResolver(table ForeignTable) NameResolver {
	return func(index int) (string, bool) {
		if table == nil {
			return "", false
		}
		return table.NameByOffset(index - 1)
	}
}

// IndexFallback resolves every index to its decimal string. Last link
// in the id chain; guarantees migration always has an id to assign.
func IndexFallback() NameResolver {
	return func(index int) (string, bool) {
		return strconv.Itoa(index), true
	}
}
