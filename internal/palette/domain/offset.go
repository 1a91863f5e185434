package palette

// The registry's index space is 1-based, but some consumers (the
// sprite-sheet slicer and the foreign id table) address palettes by a
// 0-based offset. These two views are pure functions over the
// bijection; there is no independent state.
//
// Round-trip law: OffsetToID(IDToOffset(id)) == id for every
// registered id, and IDToOffset(OffsetToID(k)) == k for 0 <= k < Count.

// OffsetToID returns the id at a 0-based offset.
func (r *Registry) OffsetToID(offset int) (string, bool) {
	return r.IDAt(offset + 1)
}

// IDToOffset returns the 0-based offset of a registered id.
func (r *Registry) IDToOffset(id string) (int, bool) {
	index, ok := r.IndexOf(id)
	if !ok {
		return 0, false
	}
	return index - 1, true
}
