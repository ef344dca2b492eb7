package textutil

// Ratio computes the sequence-matching similarity between a and b: twice the
// total length of the matching blocks divided by the combined length of both
// strings. Identical non-empty strings score 1.0. When either string is empty
// the ratio is 0; two empty strings carry no evidence of relatedness and are
// deliberately not treated as a perfect match.
func Ratio(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ar := []rune(a)
	br := []rune(b)
	matched := 0
	for _, m := range matchingBlocks(ar, br) {
		matched += m.size
	}
	return 2 * float64(matched) / float64(len(ar)+len(br))
}

type matchBlock struct {
	a    int
	b    int
	size int
}

// matchingBlocks finds the non-overlapping matching blocks between a and b by
// repeatedly locating the longest common run and recursing into the regions
// before and after it.
func matchingBlocks(a, b []rune) []matchBlock {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	type span struct {
		alo, ahi, blo, bhi int
	}
	pending := []span{{0, len(a), 0, len(b)}}
	var blocks []matchBlock
	for len(pending) > 0 {
		s := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		m := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if m.size == 0 {
			continue
		}
		blocks = append(blocks, m)
		if s.alo < m.a && s.blo < m.b {
			pending = append(pending, span{s.alo, m.a, s.blo, m.b})
		}
		if m.a+m.size < s.ahi && m.b+m.size < s.bhi {
			pending = append(pending, span{m.a + m.size, s.ahi, m.b + m.size, s.bhi})
		}
	}
	return blocks
}

// longestMatch returns the earliest longest run of equal runes within
// a[alo:ahi] and b[blo:bhi], using the precomputed rune-to-positions index
// for b.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) matchBlock {
	best := matchBlock{a: alo, b: blo}
	runLengths := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := runLengths[j-1] + 1
			next[j] = k
			if k > best.size {
				best = matchBlock{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		runLengths = next
	}
	return best
}
