package catalog

import "strings"

// Filter narrows products by category (exact match, empty = all) and a
// case-insensitive search over product name or supplier name. Pure function;
// the input order is preserved in the result.
func Filter(products []Product, category, search string) []Product {
	out := make([]Product, 0, len(products))
	q := strings.ToLower(strings.TrimSpace(search))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SupplierName), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RestockCandidates picks up to max products that look under-stocked
// (below the low-water mark) or are trending, skipping ids already carried.
// This backs the dashboard auto-restock action.
func RestockCandidates(products []Product, carried map[string]bool, max int) []Product {
	const lowStock = 100

	out := make([]Product, 0, max)
	for _, p := range products {
		if len(out) == max {
			break
		}
		if carried[p.ID] {
			continue
		}
		if p.Stock < lowStock || p.IsTrending {
			out = append(out, p)
		}
	}
	return out
}
