package request

type FinancialQuery struct {
	Type  string `form:"type"`
	Year  *int   `form:"year"`
	Month *int   `form:"month"`
}
