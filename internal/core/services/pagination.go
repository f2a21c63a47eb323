package services

import "math"

// PageSize is the number of records returned by every list operation.
const PageSize = 10

// maxPage keeps the computed offset within int.
const maxPage = math.MaxInt/PageSize + 1

func pageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	return (page - 1) * PageSize
}
