// Package urlstate serializes filter state to and from a URL query string so
// a view can be shared and restored. Only non-default selections are encoded;
// a missing key on decode means "documented default", while malformed values
// fall back to the default for that category without aborting the rest.
package urlstate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/paperfeed/paperlens/internal/filter"
	"github.com/paperfeed/paperlens/internal/paper"
)

// Encode serializes the non-default parts of a state into query parameters.
// An empty selection is encoded as an empty value so it survives a round
// trip; it is not the same thing as an absent key.
func Encode(s filter.State) url.Values {
	def := filter.NewState()
	v := url.Values{}

	if !filter.SetEquals(s.ScoreStatus, def.ScoreStatus) {
		v.Set(string(filter.CategoryScoreStatus), joinSet(s.ScoreStatus, paper.ScoreStatuses()))
	}
	if !filter.SetEquals(s.Recommendation, def.Recommendation) {
		v.Set(string(filter.CategoryRecommendation), joinSet(s.Recommendation, paper.Recommendations()))
	}
	if !filter.SetEquals(s.Novelty, def.Novelty) {
		v.Set(string(filter.CategoryNovelty), joinSet(s.Novelty, paper.Novelties()))
	}
	if !filter.SetEquals(s.Impact, def.Impact) {
		v.Set(string(filter.CategoryImpact), joinSet(s.Impact, paper.Impacts()))
	}
	if !filter.SetEquals(s.Topics, def.Topics) {
		v.Set(string(filter.CategoryTopics), joinSet(s.Topics, paper.Topics()))
	}
	if !filter.SetEquals(s.Relevance, def.Relevance) {
		v.Set(string(filter.CategoryRelevance), joinSet(s.Relevance, paper.Relevances()))
	}
	if s.HIndexFound != def.HIndexFound {
		v.Set(string(filter.CategoryHIndexFound), strconv.FormatBool(s.HIndexFound))
	}
	if s.HighestHIndex != def.HighestHIndex {
		v.Set(string(filter.CategoryHighestHIndex), formatRange(s.HighestHIndex))
	}
	if s.AverageHIndex != def.AverageHIndex {
		v.Set(string(filter.CategoryAverageHIndex), formatRange(s.AverageHIndex))
	}
	if s.Sort != def.Sort {
		v.Set(string(filter.CategorySort), string(s.Sort))
	}

	return v
}

// EncodeQuery returns the encoded state as a raw query string.
func EncodeQuery(s filter.State) string {
	return Encode(s).Encode()
}

// Decode rebuilds a state from query parameters, starting from the
// documented defaults and overriding one category per present key.
func Decode(v url.Values) filter.State {
	s := filter.NewState()

	if raw, ok := getKey(v, filter.CategoryScoreStatus); ok {
		if set, ok := parseSet(raw, parseScoreStatusToken); ok {
			s.ScoreStatus = set
		}
	}
	if raw, ok := getKey(v, filter.CategoryRecommendation); ok {
		if set, ok := parseSet(raw, parseRecommendationToken); ok {
			s.Recommendation = set
		}
	}
	if raw, ok := getKey(v, filter.CategoryNovelty); ok {
		if set, ok := parseSet(raw, parseNoveltyToken); ok {
			s.Novelty = set
		}
	}
	if raw, ok := getKey(v, filter.CategoryImpact); ok {
		if set, ok := parseSet(raw, parseImpactToken); ok {
			s.Impact = set
		}
	}
	if raw, ok := getKey(v, filter.CategoryTopics); ok {
		if set, ok := parseSet(raw, parseTopicToken); ok {
			s.Topics = set
		}
	}
	if raw, ok := getKey(v, filter.CategoryRelevance); ok {
		if set, ok := parseSet(raw, parseRelevanceToken); ok {
			s.Relevance = set
		}
	}
	if raw, ok := getKey(v, filter.CategoryHIndexFound); ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			s.HIndexFound = b
		}
	}
	if raw, ok := getKey(v, filter.CategoryHighestHIndex); ok {
		if r, ok := parseRange(raw); ok {
			s.HighestHIndex = r
		}
	}
	if raw, ok := getKey(v, filter.CategoryAverageHIndex); ok {
		if r, ok := parseRange(raw); ok {
			s.AverageHIndex = r
		}
	}
	if raw, ok := getKey(v, filter.CategorySort); ok {
		if key, ok := filter.ParseSortKey(raw); ok {
			s.Sort = key
		}
	}

	return s
}

// ParseQuery decodes a raw query string (with or without a leading "?").
func ParseQuery(query string) (filter.State, error) {
	query = strings.TrimPrefix(strings.TrimSpace(query), "?")
	v, err := url.ParseQuery(query)
	if err != nil {
		return filter.NewState(), err
	}
	return Decode(v), nil
}

func getKey(v url.Values, c filter.Category) (string, bool) {
	if !v.Has(string(c)) {
		return "", false
	}
	return v.Get(string(c)), true
}

// joinSet renders the enabled values comma-joined in canonical order.
func joinSet[T ~string](set map[T]bool, order []T) string {
	var tokens []string
	for _, val := range order {
		if set[val] {
			tokens = append(tokens, string(val))
		}
	}
	return strings.Join(tokens, ",")
}

// parseSet parses a comma-joined token list. Any unrecognized token rejects
// the whole category so it falls back to its default.
func parseSet[T ~string](raw string, parse func(string) (T, bool)) (map[T]bool, bool) {
	set := make(map[T]bool)
	if strings.TrimSpace(raw) == "" {
		return set, true // explicit empty selection
	}
	for _, tok := range strings.Split(raw, ",") {
		val, ok := parse(strings.TrimSpace(tok))
		if !ok {
			return nil, false
		}
		set[val] = true
	}
	return set, true
}

func formatRange(r filter.Range) string {
	return strconv.FormatFloat(r.Min, 'f', -1, 64) + "-" + strconv.FormatFloat(r.Max, 'f', -1, 64)
}

func parseRange(raw string) (filter.Range, bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return filter.Range{}, false
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return filter.Range{}, false
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return filter.Range{}, false
	}
	if min > max {
		return filter.Range{}, false
	}
	return filter.Range{Min: min, Max: max}, true
}

// Strict token parsers: unlike the tolerant feed-side parsers, share links
// must not silently map unknown tokens onto sentinels.

func parseScoreStatusToken(s string) (paper.ScoreStatus, bool) {
	for _, v := range paper.ScoreStatuses() {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

func parseRecommendationToken(s string) (paper.Recommendation, bool) {
	for _, v := range paper.Recommendations() {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

func parseNoveltyToken(s string) (paper.Novelty, bool) {
	for _, v := range paper.Novelties() {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

func parseImpactToken(s string) (paper.Impact, bool) {
	for _, v := range paper.Impacts() {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

func parseTopicToken(s string) (paper.Topic, bool) {
	return paper.ParseTopic(s)
}

func parseRelevanceToken(s string) (paper.Relevance, bool) {
	for _, v := range paper.Relevances() {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}
