package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse describes the current page for views
type PaginationResponse struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
}

// GetPaginationParams extracts and validates pagination parameters from the request.
// defaultLimit is used when the limit query is absent or out of range.
func GetPaginationParams(c *gin.Context, defaultLimit int) PaginationParams {
	if defaultLimit < constants.MinPageSize || defaultLimit > constants.MaxPageSize {
		defaultLimit = constants.DefaultPageSize
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPageSize)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	// Keeps the offset far from overflowing
	if page > constants.MaxPage {
		page = constants.MaxPage
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = defaultLimit
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// NewPaginationResponse builds the page metadata for a result of total items
func NewPaginationResponse(params PaginationParams, total int64) PaginationResponse {
	return PaginationResponse{
		Page:    params.Page,
		Limit:   params.Limit,
		Total:   total,
		HasPrev: params.Page > 1,
		HasNext: int64(params.Offset+params.Limit) < total,
	}
}
