package utils

import (
	"math"
	"strconv"
)

// Paginate maps a 1-based page to a row offset. Page 0 is the first page;
// a negative page yields a negative offset, which repositories answer with
// an empty slice. So does a page whose offset would overflow.
func Paginate(page, size int) (int, int) {
	if page == 0 {
		page = 1
	}
	if page < 0 || (size > 0 && page-1 > math.MaxInt/size) {
		return page, -1
	}
	return page, (page - 1) * size
}

// ParsePage reads a page query value. A missing value is the first page;
// anything that is not an int, overflow included, is out of range.
func ParsePage(raw string) int {
	if raw == "" {
		return 0
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return page
}
