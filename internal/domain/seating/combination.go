package seating

import (
	"sort"

	"seatwise/internal/domain/table"
)

// Combination is a group of 2..MaxCombinationTables tables treated as one
// seating unit. Derived, never persisted.
type Combination struct {
	Tables        []table.Table
	TotalCapacity int
	Exact         bool
}

// FindCombinations enumerates every subset of size 2..maxTables whose summed
// capacity covers the target and ranks them ascending by total capacity.
// Ties keep enumeration order, which follows the input table order; no
// further tie-break is applied. Single-table feasibility belongs to the
// caller. Pure function: identical inputs yield identically ordered output.
//
// O(n^maxTables) over the free set, fine for restaurant-sized inventories.
func FindCombinations(free []table.Table, target int, maxTables int) []Combination {
	result := []Combination{}
	if len(free) < 2 || target <= 0 {
		return result
	}
	if maxTables > len(free) {
		maxTables = len(free)
	}

	indexes := make([]int, 0, maxTables)
	for size := 2; size <= maxTables; size++ {
		result = appendSubsets(result, free, target, indexes, 0, size)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCapacity < result[j].TotalCapacity
	})
	return result
}

func appendSubsets(acc []Combination, free []table.Table, target int, chosen []int, from, size int) []Combination {
	if len(chosen) == size {
		total := 0
		for _, idx := range chosen {
			total += free[idx].Capacity()
		}
		if total < target {
			return acc
		}
		members := make([]table.Table, size)
		for i, idx := range chosen {
			members[i] = free[idx]
		}
		return append(acc, Combination{
			Tables:        members,
			TotalCapacity: total,
			Exact:         total == target,
		})
	}

	for i := from; i < len(free); i++ {
		acc = appendSubsets(acc, free, target, append(chosen, i), i+1, size)
	}
	return acc
}

// TableIDs returns the member table ids in combination order.
func (c Combination) TableIDs() []string {
	ids := make([]string, len(c.Tables))
	for i, t := range c.Tables {
		ids[i] = t.ID().String()
	}
	return ids
}
