package grouping

import "mesclador/internal/similarity"

// Group is an ordered, non-empty set of filenames judged similar enough to
// merge. The first member is the anchor that seeded the group.
type Group struct {
	Files []string
}

// Anchor returns the filename that seeded the group.
func (g Group) Anchor() string {
	if len(g.Files) == 0 {
		return ""
	}
	return g.Files[0]
}

// Size returns the number of members.
func (g Group) Size() int {
	return len(g.Files)
}

// CompareFunc observes every anchor-vs-candidate comparison made while
// grouping. accepted reports whether the candidate joined the anchor's group.
type CompareFunc func(anchor, candidate string, result similarity.Result, accepted bool)

// GroupFiles partitions filenames into disjoint groups of two or more members
// whose similarity to the group anchor is at least threshold. filenames must
// already be sorted; the result depends on input order. Filenames with no
// sufficiently similar partner are left out entirely; singleton groups are
// never emitted.
func GroupFiles(filenames []string, threshold float64) []Group {
	return GroupFilesObserved(filenames, threshold, nil)
}

// GroupFilesObserved is GroupFiles with a comparison callback, used for
// explainability logging. onCompare may be nil.
func GroupFilesObserved(filenames []string, threshold float64, onCompare CompareFunc) []Group {
	placed := make(map[string]struct{}, len(filenames))
	var groups []Group

	for i, anchor := range filenames {
		if _, ok := placed[anchor]; ok {
			continue
		}

		members := []string{anchor}
		for _, candidate := range filenames[i+1:] {
			if _, ok := placed[candidate]; ok {
				continue
			}
			result := similarity.Score(anchor, candidate)
			accepted := result.Final >= threshold
			if onCompare != nil {
				onCompare(anchor, candidate, result, accepted)
			}
			if accepted {
				members = append(members, candidate)
			}
		}

		// A lone anchor was already compared against every later file and
		// matched none of them; it stays out as an eventual singleton.
		if len(members) < 2 {
			continue
		}
		for _, member := range members {
			placed[member] = struct{}{}
		}
		groups = append(groups, Group{Files: members})
	}
	return groups
}
