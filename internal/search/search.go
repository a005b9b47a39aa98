// Package search derives the visible subset of the skill catalog from
// filter criteria. It is a pure pipeline: no side effects, no storage
// I/O, and the input slice is never mutated, so views can call it on
// every render.
//
// ────────────────────────────────────────────────────────────────────
// LEARNING NOTE — fzf as a library
// ────────────────────────────────────────────────────────────────────
// Free-text matching is approximate: "gutar" should still find "Guitar
// Basics". Rather than hand-rolling an edit-distance scorer we reuse
// the matching algorithm from fzf, which is published as an importable
// Go package. FuzzyMatchV2 returns a positive score when the pattern
// characters appear in order (not necessarily contiguously) in the
// text, and zero when they do not — exactly the monotonic
// matches/doesn't-match contract the pipeline needs. The scoring
// details stay hidden behind the unexported matches helper, so the
// algorithm could be swapped without touching any caller.
package search

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/yolearn/yolearn/internal/models"
)

func init() {
	algo.Init("default")
}

// Sentinel criteria values.
const (
	FilterAll     = "All"
	PriceFree     = "Free"
	PriceExchange = "Exchange"
)

// Sort keys.
const (
	SortPopular = "popular"
	SortRating  = "rating"
	SortNewest  = "newest"
)

// Criteria is the full set of filters a skill list view can apply.
// Empty or "All" values disable the corresponding filter; an unknown
// category, level, or price value simply matches nothing.
type Criteria struct {
	Query     string
	Category  string
	Level     string
	PriceType string
	SortBy    string
}

// Visible returns the skills matching c, filtered then sorted. Filters
// run in a fixed order — category, level, price, free text — and every
// sort is stable, so ties keep their prior relative order. An empty
// input yields an empty result regardless of criteria.
func Visible(skills []models.Skill, c Criteria) []models.Skill {
	out := make([]models.Skill, 0, len(skills))

	query := strings.ToLower(strings.TrimSpace(c.Query))
	pattern := []rune(query)

	for _, sk := range skills {
		if c.Category != "" && c.Category != FilterAll && sk.Category != c.Category {
			continue
		}
		if c.Level != "" && c.Level != FilterAll && string(sk.Level) != c.Level {
			continue
		}
		if !priceMatches(c.PriceType, sk.Price) {
			continue
		}
		if len(pattern) > 0 && !matches(pattern, sk) {
			continue
		}
		out = append(out, sk)
	}

	switch c.SortBy {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SessionsCompleted > out[j].SessionsCompleted
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

func priceMatches(filter string, price models.PriceMode) bool {
	switch filter {
	case "", FilterAll:
		return true
	case PriceFree:
		return price == models.PriceFree
	case PriceExchange:
		return price == models.PriceExchange
	default:
		// Unknown filter value: no skill matches, not an error.
		return false
	}
}

// matchThreshold is the minimum fzf score for a field to count as a
// match. Zero means "pattern characters not found in order".
const matchThreshold = 0

// matches reports whether the lowercased pattern fuzzy-matches any of
// the skill's searchable fields: title, description, category, tags,
// and the poster's name.
func matches(pattern []rune, sk models.Skill) bool {
	if fieldMatches(pattern, sk.Title) ||
		fieldMatches(pattern, sk.Description) ||
		fieldMatches(pattern, sk.Category) ||
		fieldMatches(pattern, sk.OwnerName) {
		return true
	}
	for _, tag := range sk.Tags {
		if fieldMatches(pattern, tag) {
			return true
		}
	}
	return false
}

func fieldMatches(pattern []rune, text string) bool {
	if text == "" {
		return false
	}
	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, nil)
	return result.Score > matchThreshold
}
