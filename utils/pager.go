package utils

import (
	"net/http"
	"strconv"
)

const PerPage = 12

// GetPage parses the page query parameter, first page on absence or junk
func GetPage(r *http.Request) (uint64, error) {
	page := r.URL.Query().Get("page")

	if page == "" {
		return 1, nil
	}

	pageNum, err := strconv.ParseUint(page, 10, 32)

	if err != nil {
		return 0, err
	}

	if pageNum < 1 {
		pageNum = 1
	}

	return pageNum, nil
}
