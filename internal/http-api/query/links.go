package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PageLinks holds the pagination relation links for a listing response.
// Services skip building them entirely for empty result sets.
type PageLinks struct {
	Self     string
	First    string
	Last     string
	Next     string
	Previous string
}

// TotalPages computes ceil(total/size).
func TotalPages(total int64, size int) int {
	if size < 1 {
		return 0
	}
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return pages
}

// BuildPageLinks computes the well-known relation links for the current page.
// path is the request path, params the original query values (filters and sort
// included, so every link reconstructs an equivalent request). page is
// 0-based. next and previous clamp to the valid page range.
func BuildPageLinks(path string, params url.Values, page, size int, total int64) PageLinks {
	totalPages := TotalPages(total, size)
	if totalPages < 1 {
		totalPages = 1
	}

	next := page + 1
	if next > totalPages-1 {
		next = totalPages - 1
	}
	previous := page - 1
	if previous < 0 {
		previous = 0
	}

	return PageLinks{
		Self:     pageURL(path, params, page, size),
		First:    pageURL(path, params, 0, size),
		Last:     pageURL(path, params, totalPages-1, size),
		Next:     pageURL(path, params, next, size),
		Previous: pageURL(path, params, previous, size),
	}
}

// Header renders the links as an RFC 5988 Link header value.
func (l PageLinks) Header() string {
	parts := []string{
		fmt.Sprintf("<%s>; rel=\"self\"", l.Self),
		fmt.Sprintf("<%s>; rel=\"first\"", l.First),
		fmt.Sprintf("<%s>; rel=\"last\"", l.Last),
		fmt.Sprintf("<%s>; rel=\"next\"", l.Next),
		fmt.Sprintf("<%s>; rel=\"previous\"", l.Previous),
	}
	return strings.Join(parts, ", ")
}

func pageURL(path string, params url.Values, page, size int) string {
	values := url.Values{}
	for key, vals := range params {
		values[key] = vals
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("size", strconv.Itoa(size))
	return path + "?" + values.Encode()
}
