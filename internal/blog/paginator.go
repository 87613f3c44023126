package blog

import "strconv"

// Page is one bounded slice of an ordered result set.
type Page[T any] struct {
	Items     []T
	Number    int
	PageCount int
}

// HasOtherPages reports whether a pager is worth rendering at all.
func (p Page[T]) HasOtherPages() bool {
	return p.PageCount > 1
}

// Paginate slices items into the page selected by token. The token comes
// straight from the request and is untrusted:
//
//   - missing or non-numeric token: page 1
//   - page number below 1 or past the end: the last page
//
// Out-of-range requests clamp instead of failing so that stale pager
// links keep working. An empty input or non-positive page size yields an
// empty page with PageCount 0.
func Paginate[T any](items []T, pageSize int, token string) Page[T] {
	if pageSize < 1 || len(items) == 0 {
		return Page[T]{Items: []T{}, Number: 1, PageCount: 0}
	}

	pageCount := (len(items) + pageSize - 1) / pageSize

	number, err := strconv.Atoi(token)
	if err != nil {
		number = 1
	} else if number < 1 || number > pageCount {
		number = pageCount
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:     items[start:end],
		Number:    number,
		PageCount: pageCount,
	}
}
