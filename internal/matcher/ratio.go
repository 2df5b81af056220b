package matcher

// Ratio returns the Ratcliff/Obershelp similarity of a and b: twice the number
// of runes in matching blocks divided by the total rune count. Matching blocks
// are found by taking the longest common contiguous block and recursing on the
// pieces to its left and right. Two empty strings are identical.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	m := newSequenceMatcher(ra, rb)
	return 2.0 * float64(m.matches()) / float64(total)
}

// autojunkMinLen is the length of b from which very frequent runes stop
// seeding matches.
const autojunkMinLen = 200

type sequenceMatcher struct {
	a, b []rune
	b2j  map[rune][]int // positions of each rune in b, popular runes removed
}

func newSequenceMatcher(a, b []rune) *sequenceMatcher {
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	if n := len(b); n >= autojunkMinLen {
		popular := n/100 + 1
		for r, idx := range b2j {
			if len(idx) > popular {
				delete(b2j, r)
			}
		}
	}

	return &sequenceMatcher{a: a, b: b, b2j: b2j}
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] inside
// a[alo:ahi] and b[blo:bhi], preferring the earliest i, then the earliest j.
func (m *sequenceMatcher) longestMatch(alo, ahi, blo, bhi int) (int, int, int) {
	besti, bestj, bestk := alo, blo, 0

	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}

	// Popular runes never seed a match but may still extend one.
	for besti > alo && bestj > blo && m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestk = besti-1, bestj-1, bestk+1
	}
	for besti+bestk < ahi && bestj+bestk < bhi && m.a[besti+bestk] == m.b[bestj+bestk] {
		bestk++
	}

	return besti, bestj, bestk
}

// matches sums the sizes of all matching blocks.
func (m *sequenceMatcher) matches() int {
	type span struct{ alo, ahi, blo, bhi int }

	total := 0
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		total += k

		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+k < s.ahi && j+k < s.bhi {
			queue = append(queue, span{i + k, s.ahi, j + k, s.bhi})
		}
	}

	return total
}
