package handlers

import (
	"errors"
	"strconv"
)

// parsePaginationParams interprets optional page/limit query values.
// Both absent means no pagination; anything non-positive is rejected.
func parsePaginationParams(pageStr, limitStr string) (int, int, error) {
	if pageStr == "" && limitStr == "" {
		return 0, 0, nil
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page")
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return 0, 0, errors.New("invalid limit")
	}

	return page, limit, nil
}
