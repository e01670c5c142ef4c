package command

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/termfolio/internal/content"
)

// maxSuggestDistance bounds typo suggestions by edit distance.
const maxSuggestDistance = 2

// Run parses line and executes the matching command. A blank line yields an
// empty Result. Unknown names produce a single error block.
func (r *Registry) Run(ctx Context, line string) Result {
	inv := Parse(line)
	if inv.Name == "" {
		return Result{}
	}
	cmd, ok := r.Resolve(inv.Name)
	if !ok {
		res := single(content.Unknown(inv.Raw, r.Suggest(inv.Name)))
		res.Name = inv.Name
		res.Unknown = true
		return res
	}
	ctx.entries = r.HelpEntries()
	res := cmd.Handler(ctx, inv)
	res.Name = cmd.Name
	return res
}

// Suggest returns the closest command name to a mistyped one, or "".
// Subsequence matches win; otherwise the nearest name within a small edit
// distance is used.
func (r *Registry) Suggest(name string) string {
	if name == "" {
		return ""
	}
	names := r.Names()
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) > 0 {
		best := ranks[0]
		for _, rank := range ranks[1:] {
			if rank.Distance < best.Distance ||
				(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
				best = rank
			}
		}
		return best.Target
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range names {
		if d := fuzzy.LevenshteinDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
