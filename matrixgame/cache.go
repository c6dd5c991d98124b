package matrixgame

import (
	"encoding/binary"
	"expvar"
	"math"

	"github.com/hashicorp/golang-lru"
)

var (
	cacheHits    = expvar.NewInt("solver/cache_hits")
	cacheMisses  = expvar.NewInt("solver/cache_misses")
	cacheHitRate = expvar.NewFloat("solver/cache_hit_rate")
	cacheSize    = expvar.NewInt("solver/cache_size")
)

// CachedSolver memoizes FictitiousPlay results for recently seen payoff
// matrices. Solving is deterministic, so a cached result is exactly what a
// fresh solve would return. It is safe for concurrent use.
type CachedSolver struct {
	params Params
	cache  *lru.Cache
}

func NewCachedSolver(size int, params Params) (*CachedSolver, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &CachedSolver{
		params: params,
		cache:  cache,
	}, nil
}

// Solve returns the FictitiousPlay result for payoffs. The returned slices
// are owned by the caller.
func (cs *CachedSolver) Solve(payoffs [][]float64) Result {
	key := matrixKey(payoffs)
	cached, ok := cs.cache.Get(key)
	if ok {
		cacheHits.Add(1)
		updateHitRate()
		return copyResult(cached.(Result))
	}

	cacheMisses.Add(1)
	updateHitRate()
	result := FictitiousPlay(payoffs, cs.params)
	cs.cache.Add(key, copyResult(result))
	cacheSize.Set(int64(cs.cache.Len()))
	return result
}

func (cs *CachedSolver) Len() int {
	return cs.cache.Len()
}

func updateHitRate() {
	hits, misses := cacheHits.Value(), cacheMisses.Value()
	cacheHitRate.Set(float64(hits) / float64(hits+misses))
}

// matrixKey encodes the shape and the exact bits of every entry, so that
// only bit-identical matrices share a key.
func matrixKey(payoffs [][]float64) string {
	nCols := 0
	if len(payoffs) > 0 {
		nCols = len(payoffs[0])
	}

	buf := make([]byte, 16+8*len(payoffs)*nCols)
	binary.LittleEndian.PutUint64(buf[0:], uint64(len(payoffs)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(nCols))
	offset := 16
	for _, row := range payoffs {
		for _, x := range row {
			binary.LittleEndian.PutUint64(buf[offset:], math.Float64bits(x))
			offset += 8
		}
	}

	return string(buf)
}

func copyResult(r Result) Result {
	r.RowStrategy = copyStrategy(r.RowStrategy)
	r.ColStrategy = copyStrategy(r.ColStrategy)
	return r
}

func copyStrategy(s []float64) []float64 {
	result := make([]float64, len(s))
	copy(result, s)
	return result
}
