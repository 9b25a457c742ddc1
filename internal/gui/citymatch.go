package gui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

// matchCity resolves free-typed text against a city list, tolerating
// typos. Returns the index of the best match, or -1 when nothing is
// close enough to trust.
func matchCity(query string, cities []game.City) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return -1
	}

	best := -1
	bestDist := -1
	for i, city := range cities {
		dist := cityDistance(query, city)
		if bestDist == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	// A third of the query length in edits is the tolerance ceiling;
	// beyond that the "match" is a guess.
	if bestDist > len(query)/3+1 {
		return -1
	}
	return best
}

func cityDistance(query string, city game.City) int {
	name := strings.ToLower(city.Name)
	short := name
	if idx := strings.Index(name, ","); idx > 0 {
		short = name[:idx]
	}

	if strings.HasPrefix(short, query) || strings.HasPrefix(strings.ToLower(city.ID), query) {
		return 0
	}

	dist := levenshtein.ComputeDistance(query, short)
	if full := levenshtein.ComputeDistance(query, name); full < dist {
		dist = full
	}
	return dist
}
