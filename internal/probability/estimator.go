// Package probability computes boolean occurrence and co-occurrence counts of
// topic words over a reference corpus. Counts for every requested word and
// word pair are gathered in a single corpus scan, optionally partitioned
// across workers with partial counts merged by summation.
package probability

import (
	"sync"

	"github.com/gcbaptista/go-topic-coherence/corpus"
	"github.com/gcbaptista/go-topic-coherence/model"
)

// Pair is an unordered word-id pair, normalized so A < B.
type Pair struct {
	A, B uint32
}

// MakePair normalizes (x, y) into a Pair. x and y must differ; identical
// words are handled by callers via plain occurrence counts.
func MakePair(x, y uint32) Pair {
	if x < y {
		return Pair{A: x, B: y}
	}
	return Pair{A: y, B: x}
}

// Request lists the distinct words and word pairs whose counts are needed,
// collected across all topics' segments before the corpus scan. Building the
// request first is what keeps estimation at one scan instead of one scan per
// segment.
type Request struct {
	Words map[uint32]struct{}
	Pairs map[Pair]struct{}
}

// NewRequest creates an empty count request.
func NewRequest() *Request {
	return &Request{
		Words: make(map[uint32]struct{}),
		Pairs: make(map[Pair]struct{}),
	}
}

// AddWord registers a single word for occurrence counting.
func (r *Request) AddWord(id uint32) {
	r.Words[id] = struct{}{}
}

// AddPair registers an unordered pair for co-occurrence counting. Identical
// ids are skipped: their joint count equals the single-word count.
func (r *Request) AddPair(x, y uint32) {
	if x == y {
		r.AddWord(x)
		return
	}
	r.Words[x] = struct{}{}
	r.Words[y] = struct{}{}
	r.Pairs[MakePair(x, y)] = struct{}{}
}

// AddSegments registers every target×conditioning word combination of the
// given segments.
func (r *Request) AddSegments(segments []model.Segment) {
	for _, seg := range segments {
		for _, t := range seg.Target {
			r.AddWord(t)
			for _, c := range seg.Conditioning {
				r.AddPair(t, c)
			}
		}
	}
}

// Stats holds the boolean counts produced by one estimation pass. Total is
// the number of scanned units (documents or window positions) and is the
// normalization denominator for probabilities.
type Stats struct {
	Occurrences   map[uint32]int
	CoOccurrences map[Pair]int
	Total         int
}

func newStats(req *Request) *Stats {
	return &Stats{
		Occurrences:   make(map[uint32]int, len(req.Words)),
		CoOccurrences: make(map[Pair]int, len(req.Pairs)),
	}
}

// Occurrence returns the boolean occurrence count for one word.
func (s *Stats) Occurrence(id uint32) int {
	return s.Occurrences[id]
}

// CoOccurrence returns the boolean co-occurrence count for a word pair.
// Identical ids fall back to the single-word count.
func (s *Stats) CoOccurrence(x, y uint32) int {
	if x == y {
		return s.Occurrences[x]
	}
	return s.CoOccurrences[MakePair(x, y)]
}

// Probability converts a single-word count into a probability.
func (s *Stats) Probability(id uint32) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Occurrences[id]) / float64(s.Total)
}

// JointProbability converts a pair count into a probability.
func (s *Stats) JointProbability(x, y uint32) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.CoOccurrence(x, y)) / float64(s.Total)
}

// merge adds other's counts into s. Counting is associative and commutative,
// so per-partition partial stats can be summed in any order.
func (s *Stats) merge(other *Stats) {
	for id, n := range other.Occurrences {
		s.Occurrences[id] += n
	}
	for p, n := range other.CoOccurrences {
		s.CoOccurrences[p] += n
	}
	s.Total += other.Total
}

// BooleanDocument counts, for every requested word and pair, the number of
// bag-of-words documents containing it (boolean membership, count >= 1).
// This is the document-level co-occurrence source used by u_mass.
func BooleanDocument(docs []corpus.BowDocument, req *Request, workers int) *Stats {
	return scanPartitioned(len(docs), workers, req, func(lo, hi int, partial *Stats) {
		for _, doc := range docs[lo:hi] {
			countUnit(partial, req, func(id uint32) bool {
				return doc[id] > 0
			})
			partial.Total++
		}
	})
}

// BooleanSlidingWindow counts, for every requested word and pair, the number
// of window positions containing it, sliding a fixed-size window over each
// token sequence. Texts shorter than the window contribute exactly one
// window; empty texts contribute none. This is the virtual-document source
// used by c_v.
func BooleanSlidingWindow(texts [][]uint32, window int, req *Request, workers int) *Stats {
	if window < 1 {
		window = 1
	}
	return scanPartitioned(len(texts), workers, req, func(lo, hi int, partial *Stats) {
		for _, text := range texts[lo:hi] {
			slideOverText(partial, req, text, window)
		}
	})
}

// slideOverText counts windows of one text, maintaining per-word counts
// incrementally as the window slides one token at a time.
func slideOverText(stats *Stats, req *Request, text []uint32, window int) {
	if len(text) == 0 {
		return
	}
	if len(text) <= window {
		countUnit(stats, req, presenceOf(text, req))
		stats.Total++
		return
	}

	// inWindow tracks how many of each requested word the current window
	// holds, so each slide is O(2) updates instead of a rescan.
	inWindow := make(map[uint32]int, len(req.Words))
	for _, id := range text[:window] {
		if _, wanted := req.Words[id]; wanted {
			inWindow[id]++
		}
	}

	present := func(id uint32) bool { return inWindow[id] > 0 }
	countUnit(stats, req, present)
	stats.Total++

	for start := 1; start+window <= len(text); start++ {
		out := text[start-1]
		if _, wanted := req.Words[out]; wanted {
			inWindow[out]--
		}
		in := text[start+window-1]
		if _, wanted := req.Words[in]; wanted {
			inWindow[in]++
		}
		countUnit(stats, req, present)
		stats.Total++
	}
}

// presenceOf builds a membership predicate for one whole text.
func presenceOf(text []uint32, req *Request) func(uint32) bool {
	present := make(map[uint32]struct{}, len(req.Words))
	for _, id := range text {
		if _, wanted := req.Words[id]; wanted {
			present[id] = struct{}{}
		}
	}
	return func(id uint32) bool {
		_, ok := present[id]
		return ok
	}
}

// countUnit increments counts for one scanned unit (document or window) given
// a membership predicate over requested words.
func countUnit(stats *Stats, req *Request, present func(uint32) bool) {
	for id := range req.Words {
		if present(id) {
			stats.Occurrences[id]++
		}
	}
	for pair := range req.Pairs {
		if present(pair.A) && present(pair.B) {
			stats.CoOccurrences[pair]++
		}
	}
}

// scanPartitioned splits n units into one contiguous range per worker, runs
// scan on each range concurrently, and merges partial counts after all
// workers finish. With workers <= 1 the scan runs inline.
func scanPartitioned(n, workers int, req *Request, scan func(lo, hi int, partial *Stats)) *Stats {
	stats := newStats(req)
	if n == 0 {
		return stats
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		scan(0, n, stats)
		return stats
	}

	partials := make([]*Stats, workers)
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		partials[w] = newStats(req)
		wg.Add(1)
		go func(lo, hi int, partial *Stats) {
			defer wg.Done()
			scan(lo, hi, partial)
		}(lo, hi, partials[w])
	}
	wg.Wait()

	for _, partial := range partials {
		stats.merge(partial)
	}
	return stats
}
