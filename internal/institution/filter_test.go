package institution

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inst(name, province string, domains []string, webPages []string) Institution {
	return Institution{Name: name, Domains: domains, WebPages: webPages, StateProvince: province}
}

func sample() []Institution {
	return []Institution{
		inst("Universidad de Chile", "Santiago", []string{"uchile.cl"}, []string{"https://www.uchile.cl"}),
		inst("Pontificia Universidad Católica", "Santiago", []string{"uc.cl"}, []string{"https://www.uc.cl"}),
		inst("Universidad de Concepción", "Biobío", []string{"udec.cl"}, []string{"https://www.udec.cl"}),
		inst("Adolfo Ibáñez University", "Santiago", []string{"uai.cl"}, []string{"https://www.uai.cl"}),
	}
}

func TestFilter_Query(t *testing.T) {
	t.Run("empty query keeps everything", func(t *testing.T) {
		res := Filter(sample(), Query{})
		assert.Equal(t, 4, res.Total)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		res := Filter(sample(), Query{Q: "CATÓLICA"})
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "Pontificia Universidad Católica", res.Page[0].Name)
	})

	t.Run("matches domains", func(t *testing.T) {
		res := Filter(sample(), Query{Q: "udec"})
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "Universidad de Concepción", res.Page[0].Name)
	})

	t.Run("matches web pages", func(t *testing.T) {
		res := Filter(sample(), Query{Q: "www.uai"})
		assert.Equal(t, 1, res.Total)
	})

	t.Run("no match", func(t *testing.T) {
		res := Filter(sample(), Query{Q: "zzz"})
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Page)
		assert.Equal(t, 1, res.CurrentPage)
		assert.Equal(t, 1, res.TotalPages)
	})
}

func TestFilter_CityAndTLD(t *testing.T) {
	t.Run("city filters on state province", func(t *testing.T) {
		res := Filter(sample(), Query{City: "santiago"})
		assert.Equal(t, 3, res.Total)
	})

	t.Run("tld suffix on domains", func(t *testing.T) {
		list := append(sample(), inst("MIT", "MA", []string{"mit.edu"}, []string{"https://web.mit.edu"}))
		res := Filter(list, Query{TLD: ".edu"})
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "MIT", res.Page[0].Name)
	})

	t.Run("tld all disables the filter", func(t *testing.T) {
		res := Filter(sample(), Query{TLD: "all"})
		assert.Equal(t, 4, res.Total)
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		combined := Filter(sample(), Query{Q: "universidad", City: "santiago", TLD: ".cl"})

		byQuery := toNames(Filter(sample(), Query{Q: "universidad"}))
		byCity := toNames(Filter(sample(), Query{City: "santiago"}))
		byTLD := toNames(Filter(sample(), Query{TLD: ".cl"}))

		for _, got := range toNames(combined) {
			assert.Contains(t, byQuery, got)
			assert.Contains(t, byCity, got)
			assert.Contains(t, byTLD, got)
		}
		assert.Equal(t, 2, combined.Total)
	})
}

func toNames(res Result) []string {
	names := make([]string, 0, len(res.Page))
	for _, i := range res.Page {
		names = append(names, i.Name)
	}
	return names
}

func TestFilter_Sort(t *testing.T) {
	t.Run("name ascending is the default", func(t *testing.T) {
		res := Filter(sample(), Query{})
		assert.Equal(t, "Adolfo Ibáñez University", res.Page[0].Name)
	})

	t.Run("name descending", func(t *testing.T) {
		res := Filter(sample(), Query{Sort: "name_desc"})
		assert.Equal(t, "Adolfo Ibáñez University", res.Page[len(res.Page)-1].Name)
	})

	t.Run("stable for equal names", func(t *testing.T) {
		list := []Institution{
			inst("Same Name", "A", []string{"a.cl"}, nil),
			inst("Same Name", "B", []string{"b.cl"}, nil),
		}
		res := Filter(list, Query{})
		assert.Equal(t, "A", res.Page[0].StateProvince)
		assert.Equal(t, "B", res.Page[1].StateProvince)
	})
}

func TestFilter_Pagination(t *testing.T) {
	many := make([]Institution, 120)
	for i := range many {
		many[i] = inst(fmt.Sprintf("University %03d", i), "", []string{fmt.Sprintf("u%03d.cl", i)}, nil)
	}

	t.Run("120 items make 3 pages of 50", func(t *testing.T) {
		res := Filter(many, Query{Page: 1})
		assert.Equal(t, 3, res.TotalPages)
		assert.Len(t, res.Page, 50)

		last := Filter(many, Query{Page: 3})
		assert.Len(t, last.Page, 20)
	})

	t.Run("page zero clamps to 1", func(t *testing.T) {
		res := Filter(many, Query{Page: 0})
		assert.Equal(t, 1, res.CurrentPage)
		assert.Equal(t, Filter(many, Query{Page: 1}).Page, res.Page)
	})

	t.Run("page beyond the end clamps to last", func(t *testing.T) {
		res := Filter(many, Query{Page: 99})
		assert.Equal(t, 3, res.CurrentPage)
		assert.Equal(t, Filter(many, Query{Page: 3}).Page, res.Page)
	})

	t.Run("shrinking filter reclamps a held page number", func(t *testing.T) {
		// Page 3 was valid for 120 items; a filter narrowing to 40
		// matches must clamp it back to 1.
		res := Filter(many[:40], Query{Page: 3})
		assert.Equal(t, 1, res.CurrentPage)
		assert.Equal(t, 1, res.TotalPages)
		assert.Len(t, res.Page, 40)
	})

	t.Run("empty list still reports one page", func(t *testing.T) {
		res := Filter(nil, Query{Page: 5})
		assert.Equal(t, 1, res.CurrentPage)
		assert.Equal(t, 1, res.TotalPages)
		assert.Empty(t, res.Page)
	})
}
