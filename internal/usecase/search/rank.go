package search

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/healthdir/internal/domain/search/query"
	"github.com/kailas-cloud/healthdir/internal/domain/search/result"
	"github.com/kailas-cloud/healthdir/internal/domain/text"
)

// rankKey holds the precomputed tie-break signals of a result, in comparator order.
type rankKey struct {
	matchCount int
	exactName  bool
	brandMatch bool
	nameFull   bool
	nameTerm   bool
}

func newRankKey(r *result.Result, q query.Query) rankKey {
	full := q.Text()
	terms := q.Terms()
	name := text.Fold(r.Name())

	k := rankKey{
		matchCount: r.MatchCount(),
		exactName:  name == full,
		nameFull:   strings.HasPrefix(name, full),
	}
	for _, b := range r.BrandNames() {
		brand := text.Fold(b)
		if brand == full || containsString(terms, brand) {
			k.brandMatch = true
			break
		}
	}
	for _, t := range terms {
		if strings.HasPrefix(name, t) {
			k.nameTerm = true
			break
		}
	}
	return k
}

// less applies the sequential comparator: each rule breaks ties left by the previous one.
func (a rankKey) less(b rankKey) bool {
	if a.matchCount != b.matchCount {
		return a.matchCount > b.matchCount
	}
	if a.exactName != b.exactName {
		return a.exactName
	}
	if a.brandMatch != b.brandMatch {
		return a.brandMatch
	}
	if a.nameFull != b.nameFull {
		return a.nameFull
	}
	if a.nameTerm != b.nameTerm {
		return a.nameTerm
	}
	return false
}

// rank sorts results by relevance in place. Ties keep their input order.
// Kinds are interleaved; no regrouping happens after ranking.
func rank(results []result.Result, q query.Query) {
	type ranked struct {
		res result.Result
		key rankKey
	}

	items := make([]ranked, len(results))
	for i := range results {
		items[i] = ranked{res: results[i], key: newRankKey(&results[i], q)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key.less(items[j].key)
	})

	for i := range items {
		results[i] = items[i].res
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
