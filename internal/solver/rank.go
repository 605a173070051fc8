// internal/solver/rank.go
//
// Blended ranking of candidate guesses.
//
// Each word in the guess pool is scored
//
//	alpha * normalized_entropy + (1 - alpha) * normalized_frequency
//
// where both terms are normalized by the maximum observed in this pass.
// Output order is deterministic: combined score desc, raw entropy desc,
// word asc. Large pools are scored across a fixed set of goroutines;
// small pools are scored serially where fan-out overhead is not worth it.

package solver

import (
	"runtime"
	"sort"
	"sync"
)

// parallelThreshold is the pool size above which entropy is computed
// concurrently.
const parallelThreshold = 500

type scored struct {
	word     string
	entropy  float64
	combined float64
}

// Rank scores every word in pool against candidates and returns the top k,
// fewer if the pool is smaller. A single remaining candidate short-circuits
// to that word regardless of alpha and topk.
func Rank(pool, candidates []string, dict *Dictionary, alpha float64, topk int) ([]string, error) {
	if alpha < 0 || alpha > 1 {
		return nil, ErrInvalidAlpha
	}
	if topk <= 0 {
		return nil, ErrInvalidTopK
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	if len(candidates) == 1 {
		return []string{candidates[0]}, nil
	}

	rows := make([]scored, len(pool))
	for i, w := range pool {
		rows[i].word = w
	}
	scoreEntropies(rows, candidates)

	// Pass-wide maxima; a zero max leaves that term at 0 for every word.
	maxEnt, maxFreq := 0.0, 0.0
	for i := range rows {
		if rows[i].entropy > maxEnt {
			maxEnt = rows[i].entropy
		}
		if f := dict.Weight(rows[i].word); f > maxFreq {
			maxFreq = f
		}
	}
	for i := range rows {
		var ent, freq float64
		if maxEnt > 0 {
			ent = rows[i].entropy / maxEnt
		}
		if maxFreq > 0 {
			freq = dict.Weight(rows[i].word) / maxFreq
		}
		rows[i].combined = alpha*ent + (1-alpha)*freq
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].combined != rows[j].combined {
			return rows[i].combined > rows[j].combined
		}
		if rows[i].entropy != rows[j].entropy {
			return rows[i].entropy > rows[j].entropy
		}
		return rows[i].word < rows[j].word
	})

	if topk > len(rows) {
		topk = len(rows)
	}
	out := make([]string, topk)
	for i := 0; i < topk; i++ {
		out[i] = rows[i].word
	}
	return out, nil
}

// scoreEntropies fills in rows[i].entropy for every row. Pools at or above
// parallelThreshold are striped across NumCPU goroutines; the candidate set
// is read-only and shared.
func scoreEntropies(rows []scored, candidates []string) {
	workers := runtime.NumCPU()
	if len(rows) < parallelThreshold || workers < 2 {
		for i := range rows {
			rows[i].entropy = Entropy(rows[i].word, candidates)
		}
		return
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(rows); i += workers {
				rows[i].entropy = Entropy(rows[i].word, candidates)
			}
		}(w)
	}
	wg.Wait()
}
