package request

// ListRequest represents the query of a resource list
type ListRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Refresh bool   `form:"refresh"`
}

// SalesReportRequest bounds a sales report. Dates use YYYY-MM-DD.
type SalesReportRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
