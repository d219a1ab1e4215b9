package gridsearch

import (
	"time"

	"github.com/montanaflynn/stats"
)

// Summary aggregates one algorithm's runs over several comparisons.
// Path statistics only cover runs that found a path.
type Summary struct {
	Algorithm      Algorithm
	Runs           int
	Found          int
	MeanExplored   float64
	MedianExplored float64
	MeanPathLen    float64
	MedianElapsed  time.Duration
	P90Elapsed     time.Duration
}

// Summarize groups the runs of every batch by algorithm and reports them
// in the order algorithms first appear.
func Summarize(batches [][]Comparison) ([]Summary, error) {
	type samples struct {
		explored, pathLen, elapsed stats.Float64Data
		found                      int
	}
	var order []Algorithm
	by := map[Algorithm]*samples{}
	for _, batch := range batches {
		for _, c := range batch {
			if c.Result == nil {
				continue
			}
			s, ok := by[c.Algorithm]
			if !ok {
				s = &samples{}
				by[c.Algorithm] = s
				order = append(order, c.Algorithm)
			}
			s.explored = append(s.explored, float64(len(c.Result.Explored)))
			s.elapsed = append(s.elapsed, float64(c.Result.Elapsed))
			if c.Result.Found() {
				s.found++
				s.pathLen = append(s.pathLen, float64(c.Result.Len()))
			}
		}
	}

	out := make([]Summary, 0, len(order))
	for _, a := range order {
		s := by[a]
		sum := Summary{Algorithm: a, Runs: len(s.explored), Found: s.found}
		var err error
		if sum.MeanExplored, err = s.explored.Mean(); err != nil {
			return nil, err
		}
		if sum.MedianExplored, err = s.explored.Median(); err != nil {
			return nil, err
		}
		if len(s.pathLen) > 0 {
			if sum.MeanPathLen, err = s.pathLen.Mean(); err != nil {
				return nil, err
			}
		}
		med, err := s.elapsed.Median()
		if err != nil {
			return nil, err
		}
		p90, err := s.elapsed.Percentile(90)
		if err != nil {
			return nil, err
		}
		sum.MedianElapsed, sum.P90Elapsed = time.Duration(med), time.Duration(p90)
		out = append(out, sum)
	}
	return out, nil
}
