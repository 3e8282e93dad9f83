package filter

import (
	"fmt"

	"github.com/paperfeed/paperlens/internal/paper"
)

// PageCount returns how many pages the visible sequence spans. An empty
// sequence still has one (empty) page so the pager never divides by zero.
func PageCount(total, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Page slices one 1-based page out of the sorted visible sequence. Out-of-range
// pages clamp to the nearest valid page.
func Page(papers []paper.Paper, page, perPage int) []paper.Paper {
	if perPage < 1 {
		perPage = 1
	}
	last := PageCount(len(papers), perPage)
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}

	start := (page - 1) * perPage
	if start >= len(papers) {
		return nil
	}
	end := start + perPage
	if end > len(papers) {
		end = len(papers)
	}
	return papers[start:end]
}

// ButtonLabel renders the per-category selection count shown on filter
// controls.
func ButtonLabel(selected, total int) string {
	switch selected {
	case total:
		return "All Selected"
	case 0:
		return "None Selected"
	default:
		return fmt.Sprintf("%d Selected", selected)
	}
}
