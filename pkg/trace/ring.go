package trace

// Ring keeps the most recent entries.
type Ring struct {
	entries []Entry
	next    int
	full    bool
}

// NewRing returns a Ring holding up to size entries.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{entries: make([]Entry, size)}
}

// Trace implements Tracer.
func (r *Ring) Trace(e Entry) {
	r.entries[r.next] = e
	r.next++
	if r.next == len(r.entries) {
		r.next = 0
		r.full = true
	}
}

// Len returns the number of entries held.
func (r *Ring) Len() int {
	if r.full {
		return len(r.entries)
	}
	return r.next
}

// Entries returns the held entries, oldest first.
func (r *Ring) Entries() []Entry {
	if !r.full {
		return append([]Entry(nil), r.entries[:r.next]...)
	}
	out := make([]Entry, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}
