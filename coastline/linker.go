package coastline

// Link joins a multiset of open polylines into a set of closed rings by
// endpoint id, per spec.md §4.B.
//
// Algorithm: maintain two dictionaries, byStart and byEnd, keyed by a
// live polyline's first/last vertex id. For each input polyline P, in
// order:
//
//   - If P is already closed, emit it and continue.
//   - follower   := byStart[last(P)]  (a polyline starting where P ends)
//   - predecessor:= byEnd[first(P)]   (a polyline ending where P begins)
//   - Four cases: only follower → P‖follower; only predecessor →
//     predecessor‖P; both and identical → predecessor‖P, emit closed;
//     both and distinct → predecessor‖P‖follower; neither → P stands
//     alone.
//   - Re-index the resulting polyline into byStart/byEnd (removing the
//     dictionary entries for any polyline it absorbed).
//
// On completion, both dictionaries must be empty — every segment has
// been absorbed into a closed ring. If not, the input was malformed and
// Link returns ErrOpenCoastline.
//
// Complexity: each polyline is indexed in and removed from the
// dictionaries a constant number of times, but every merge copies the
// joined vertex slices, so copying can grow quadratically with the
// number of segments that make up one ring.
func Link(segments []Polyline) ([]Polyline, error) {
	byStart := make(map[uint64]*Polyline)
	byEnd := make(map[uint64]*Polyline)
	var closed []Polyline

	deindex := func(p *Polyline) {
		if cur, ok := byStart[p.first()]; ok && cur == p {
			delete(byStart, p.first())
		}
		if cur, ok := byEnd[p.last()]; ok && cur == p {
			delete(byEnd, p.last())
		}
	}
	index := func(p *Polyline) {
		byStart[p.first()] = p
		byEnd[p.last()] = p
	}

	for _, seg := range segments {
		// Copy so later concatenation never aliases the caller's slice.
		cur := append(Polyline(nil), seg...)

		if cur.closed() {
			closed = append(closed, cur)
			continue
		}

		follower := byStart[cur.last()]
		predecessor := byEnd[cur.first()]

		switch {
		case predecessor != nil && follower != nil && predecessor == follower:
			// A single polyline is both our predecessor and our follower:
			// joining it to us closes the ring.
			deindex(predecessor)
			merged := concat(*predecessor, cur)
			closed = append(closed, merged)
			continue

		case predecessor != nil && follower != nil:
			deindex(predecessor)
			deindex(follower)
			merged := concat(concat(*predecessor, cur), *follower)
			cur = merged

		case predecessor != nil:
			deindex(predecessor)
			cur = concat(*predecessor, cur)

		case follower != nil:
			deindex(follower)
			cur = concat(cur, *follower)
		}

		if cur.closed() {
			closed = append(closed, cur)
			continue
		}

		p := new(Polyline)
		*p = cur
		index(p)
	}

	if len(byStart) != 0 || len(byEnd) != 0 {
		return nil, ErrOpenCoastline
	}

	return closed, nil
}

// concat joins a and b, dropping the duplicated joint vertex (a's last
// id, which equals b's first id).
func concat(a, b Polyline) Polyline {
	out := make(Polyline, 0, len(a)+len(b)-1)
	out = append(out, a...)
	out = append(out, b[1:]...)

	return out
}
