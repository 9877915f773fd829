// SPDX-License-Identifier: GPL-3.0-only

package prefixdb

import (
	"cmp"
	"slices"
)

type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Stats struct {
	Total        int     `json:"total"`
	ByCarrier    []Count `json:"by_carrier"`
	TopProvinces []Count `json:"top_provinces"`
	TopCities    []Count `json:"top_cities"`
}

// Analyze summarises records by carrier, and the top n provinces and cities.
func Analyze(records []Record, top int) Stats {
	carriers := map[string]int{}
	provinces := map[string]int{}
	cities := map[string]int{}
	for _, r := range records {
		carriers[r.Carrier.String()]++
		provinces[r.Province]++
		cities[r.City]++
	}

	byCarrier := sortedCounts(carriers)
	slices.SortFunc(byCarrier, func(a, b Count) int { return cmp.Compare(a.Name, b.Name) })

	return Stats{
		Total:        len(records),
		ByCarrier:    byCarrier,
		TopProvinces: limit(sortedCounts(provinces), top),
		TopCities:    limit(sortedCounts(cities), top),
	}
}

// sortedCounts orders by count descending, then name.
func sortedCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for name, n := range m {
		counts = append(counts, Count{Name: name, Count: n})
	}
	slices.SortFunc(counts, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return counts
}

func limit(counts []Count, n int) []Count {
	if n > 0 && len(counts) > n {
		return counts[:n]
	}
	return counts
}
