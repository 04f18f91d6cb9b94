package domain

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// Offset is the row offset of the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Enabled reports whether the caller asked for a page at all.
func (p Pagination) Enabled() bool {
	return p.Page > 0 && p.PageSize > 0
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
	RequestID string `json:"-"`
}

// Anonymous reports whether no user is attached to the request.
func (r RequestContext) Anonymous() bool {
	return r.UserID == 0
}
