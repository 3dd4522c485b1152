package sitemap

// DiffResult represents the difference between two sitemap documents.
type DiffResult struct {
	// Added contains entries whose location is new.
	Added []URL

	// Removed contains entries whose location disappeared.
	Removed []URL

	// Changed contains entries present in both whose alternates differ.
	Changed []ChangedURL

	// Unchanged counts identical entries.
	Unchanged int
}

// ChangedURL pairs the old and new version of an entry with the same location.
type ChangedURL struct {
	Old URL
	New URL
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Changed   int
	Unchanged int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Changed:   len(d.Changed),
		Unchanged: d.Unchanged,
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0
}

// Diff compares two documents by entry location. Results follow document order:
// Added and Changed in the order of next, Removed in the order of prev.
func Diff(prev, next *URLSet) *DiffResult {
	result := &DiffResult{}

	prevByLoc := make(map[string]URL, len(prev.URLs))
	for _, u := range prev.URLs {
		prevByLoc[u.Loc] = u
	}
	nextByLoc := make(map[string]URL, len(next.URLs))
	for _, u := range next.URLs {
		nextByLoc[u.Loc] = u
	}

	for _, u := range next.URLs {
		old, ok := prevByLoc[u.Loc]
		switch {
		case !ok:
			result.Added = append(result.Added, u)
		case sameAlternates(old.Alternates, u.Alternates):
			result.Unchanged++
		default:
			result.Changed = append(result.Changed, ChangedURL{Old: old, New: u})
		}
	}

	for _, u := range prev.URLs {
		if _, ok := nextByLoc[u.Loc]; !ok {
			result.Removed = append(result.Removed, u)
		}
	}

	return result
}

// sameAlternates compares link sets ignoring order.
func sameAlternates(a, b []Link) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[Link]int, len(a))
	for _, l := range a {
		seen[l]++
	}
	for _, l := range b {
		if seen[l] == 0 {
			return false
		}
		seen[l]--
	}
	return true
}
