package strview

// Pool owns a growing set of byte buffers such that any two Intern
// calls with equal content return the same stable View. Views returned
// by a Pool remain valid until the Pool is destroyed, or until it is
// absorbed into another Pool via Merge (which relocates no bytes).
type Pool struct {
	buckets map[uint32][]View
	arenas  [][]byte
	arenaAt int
	size    int
}

const defaultArenaSize = 64 * 1024

// NewPool returns an empty interning pool.
func NewPool() *Pool {
	return &Pool{buckets: make(map[uint32][]View)}
}

// Intern stores a copy of v's content if no equal content has been
// interned yet, and returns the stable View plus whether a new entry
// was inserted.
func (p *Pool) Intern(v View) (View, bool) {
	h := v.Hash()
	for _, existing := range p.buckets[h] {
		if existing.Equal(v) {
			return existing, false
		}
	}
	stored := p.copyIn(v.Bytes())
	p.buckets[h] = append(p.buckets[h], stored)
	return stored, true
}

// InternString is a convenience wrapper around Intern for Go strings.
func (p *Pool) InternString(s string) View {
	v, _ := p.Intern(FromString(s))
	return v
}

func (p *Pool) copyIn(b []byte) View {
	if len(b) == 0 {
		return View{}
	}
	if p.arenas == nil || len(p.arenas[p.arenaAt])+len(b) > cap(p.arenas[p.arenaAt]) {
		size := defaultArenaSize
		if len(b) > size {
			size = len(b)
		}
		p.arenas = append(p.arenas, make([]byte, 0, size))
		p.arenaAt = len(p.arenas) - 1
	}
	arena := p.arenas[p.arenaAt]
	start := len(arena)
	arena = append(arena, b...)
	p.arenas[p.arenaAt] = arena
	p.size += len(b)
	return View{data: arena[start : start+len(b) : start+len(b)]}
}

// Len reports the number of distinct interned strings.
func (p *Pool) Len() int {
	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

// Size reports total bytes of interned content.
func (p *Pool) Size() int { return p.size }

// Merge absorbs other's backing arenas into p without relocating any
// byte ever returned by other.Intern; views previously handed out by
// other remain valid. Used at the producer/consumer hand-off of the
// threaded parser variants (sax, jsonstream).
func (p *Pool) Merge(other *Pool) {
	if other == nil || other == p {
		return
	}
	for h, views := range other.buckets {
		existing := p.buckets[h]
	nextView:
		for _, v := range views {
			for _, e := range existing {
				if e.Equal(v) {
					continue nextView
				}
			}
			existing = append(existing, v)
		}
		p.buckets[h] = existing
	}
	p.arenas = append(p.arenas, other.arenas...)
	p.size += other.size
	other.buckets = nil
	other.arenas = nil
}
