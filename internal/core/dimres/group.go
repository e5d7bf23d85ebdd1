package dimres

// Group is one resolved multi-portal entity: a primary representative row
// plus the deduplicated union of every source id folded into it. Fact tables
// are keyed by the original per-portal ids, so consumers must join against
// any id in AllIDs, not just the primary's.
type Group[R any] struct {
	Primary R
	AllIDs  []string
}

// GroupSpec configures GroupBy for one dimension shape
type GroupSpec[R any] struct {
	// Key produces the normalized grouping key (folded name or address key)
	Key func(R) string

	// ID extracts the source id in string form
	ID func(R) string

	// Display returns the un-normalized display text. Longer display text is
	// assumed more complete (less truncated by a portal) and wins the
	// primary slot; snapshot period breaks ties
	Display func(R) string

	// Period returns the lexically sortable snapshot period
	Period func(R) string

	// Merge, when set, folds one sibling into the primary and is called for
	// every non-primary bucket member in original input order. Use it to
	// copy sparse optional attributes (first non-nil wins); it must not
	// change the identity of the primary
	Merge func(primary R, sibling R) R
}

// GroupBy buckets rows by normalized key and resolves each bucket to one
// Group. Every input row's id lands in exactly one group's AllIDs, and each
// group's primary id is always a member of its own AllIDs.
//
// Apart from the documented first-match-wins Merge pass, the result does not
// depend on input order: the primary is the bucket member with the longest
// display text, then the greatest period, then the smallest id as a final
// deterministic tie-break.
func GroupBy[R any](rows []R, spec GroupSpec[R]) []Group[R] {
	type bucket struct {
		members []R
		ids     []string
		seen    map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0, len(rows))
	for _, r := range rows {
		k := spec.Key(r)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{seen: make(map[string]struct{})}
			buckets[k] = b
			order = append(order, k)
		}
		b.members = append(b.members, r)
		id := spec.ID(r)
		if _, dup := b.seen[id]; !dup {
			b.seen[id] = struct{}{}
			b.ids = append(b.ids, id)
		}
	}

	out := make([]Group[R], 0, len(buckets))
	for _, k := range order {
		b := buckets[k]
		primary := b.members[0]
		for _, m := range b.members[1:] {
			if better(spec, m, primary) {
				primary = m
			}
		}
		if spec.Merge != nil {
			pid := spec.ID(primary)
			for _, m := range b.members {
				if spec.ID(m) == pid {
					continue
				}
				primary = spec.Merge(primary, m)
			}
		}
		out = append(out, Group[R]{Primary: primary, AllIDs: b.ids})
	}
	return out
}

// better reports whether a should replace b as the bucket primary
func better[R any](spec GroupSpec[R], a, b R) bool {
	la, lb := len(spec.Display(a)), len(spec.Display(b))
	if la != lb {
		return la > lb
	}
	pa, pb := spec.Period(a), spec.Period(b)
	if pa != pb {
		return pa > pb
	}
	return spec.ID(a) < spec.ID(b)
}
