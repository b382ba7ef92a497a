// Package pagination computes listing windows and the page-number
// display (first, last, current±1, gaps collapsed to ellipses).
package pagination

type Item struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Offset returns the zero-based window start for a 1-based page number.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// Window returns the page buttons to display. Always includes page 1 and
// the last page, the current page and its direct neighbours; each gap
// becomes a single ellipsis item. Empty when there is at most one page.
func Window(currentPage, totalPages int) []Item {
	if totalPages <= 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	var items []Item
	for page := 1; page <= totalPages; page++ {
		switch {
		case page == 1 || page == totalPages || (page >= currentPage-1 && page <= currentPage+1):
			items = append(items, Item{Page: page})
		case page == currentPage-2 || page == currentPage+2:
			items = append(items, Item{Ellipsis: true})
		}
	}
	return items
}
