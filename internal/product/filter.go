package product

import (
	"sort"
	"strings"
)

// Views of the catalog.
const (
	ViewAll     = "all"
	ViewMain    = "main"
	ViewGhana   = "ghana"
	ViewBundles = "bundles"
)

// MainCatalog drops the partitions that have their own views.
func MainCatalog(ps []Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if p.Category != CategoryGhana && p.Category != CategoryBundles {
			out = append(out, p)
		}
	}
	return out
}

func InCategory(ps []Product, category string) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search keeps products whose name or description contains q, ignoring case.
// A blank query keeps everything.
func Search(ps []Product, q string) []Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return ps
	}
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories, sorted.
func Categories(ps []Product) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range ps {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// View selects one of the named catalog views; unknown names mean ViewAll.
func View(ps []Product, view string) []Product {
	switch view {
	case ViewMain:
		return MainCatalog(ps)
	case ViewGhana:
		return InCategory(ps, CategoryGhana)
	case ViewBundles:
		return InCategory(ps, CategoryBundles)
	default:
		return ps
	}
}
