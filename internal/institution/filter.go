package institution

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter applies the query's filters, sort order and pagination to the raw
// list. Pure function: the input slice is never mutated. The requested page
// is clamped into [1, TotalPages] on every call, because a narrower filter
// can shrink the result set below a previously valid page number.
func Filter(list []Institution, q Query) Result {
	matched := make([]Institution, 0, len(list))
	query := strings.ToLower(q.Q)
	city := strings.ToLower(q.City)
	tld := strings.ToLower(q.TLD)
	for _, inst := range list {
		if matchesQuery(inst, query) && matchesCity(inst, city) && matchesTLD(inst, tld) {
			matched = append(matched, inst)
		}
	}

	desc := q.Sort == "name_desc"
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(matched, func(i, j int) bool {
		c := coll.CompareString(matched[i].Name, matched[j].Name)
		if desc {
			return c > 0
		}
		return c < 0
	})

	total := len(matched)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Page:        matched[start:end],
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}

// matchesQuery checks name, every domain and every web page for a
// case-insensitive substring match.
func matchesQuery(inst Institution, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(inst.Name), query) {
		return true
	}
	for _, d := range inst.Domains {
		if strings.Contains(strings.ToLower(d), query) {
			return true
		}
	}
	for _, w := range inst.WebPages {
		if strings.Contains(strings.ToLower(w), query) {
			return true
		}
	}
	return false
}

func matchesCity(inst Institution, city string) bool {
	if city == "" {
		return true
	}
	return strings.Contains(strings.ToLower(inst.StateProvince), city)
}

// matchesTLD passes when any domain or web page ends with the suffix.
// "all" (and empty) disables the filter.
func matchesTLD(inst Institution, tld string) bool {
	if tld == "" || tld == "all" {
		return true
	}
	for _, d := range inst.Domains {
		if strings.HasSuffix(strings.ToLower(d), tld) {
			return true
		}
	}
	for _, w := range inst.WebPages {
		if strings.HasSuffix(strings.ToLower(w), tld) {
			return true
		}
	}
	return false
}
