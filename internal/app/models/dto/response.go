package dto

// APIResponse is the envelope of every successful response. Count and
// Pagination are only set by list endpoints.
type APIResponse struct {
	Success    bool        `json:"success" example:"true"`
	Count      *int        `json:"count,omitempty" example:"1"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       interface{} `json:"data"`
}

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Bootcamp not found with id: 5d713995b721c3bb38c1f5d0"`
}

// PageLink points at a neighbouring page
type PageLink struct {
	Page  int `json:"page" example:"2"`
	Limit int `json:"limit" example:"1"`
}

// Pagination reports the pages around the current window. A key is omitted
// when no such page exists.
type Pagination struct {
	Next *PageLink `json:"next,omitempty"`
	Prev *PageLink `json:"prev,omitempty"`
}

// NewDataResponse wraps a single resource
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewListResponse wraps a list with its count
func NewListResponse(data interface{}, count int) APIResponse {
	return APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

// NewPaginatedResponse wraps a page of a list with count and pagination
func NewPaginatedResponse(data interface{}, count int, pagination Pagination) APIResponse {
	return APIResponse{
		Success:    true,
		Count:      &count,
		Pagination: &pagination,
		Data:       data,
	}
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   message,
	}
}
