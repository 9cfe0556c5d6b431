package domain

// ToolUsageStat is one row of the monthly usage report: how many approved
// transactions targeted the tool in the reporting month.
type ToolUsageStat struct {
	ToolName         string `json:"tool_name"`
	TransactionCount int64  `json:"transaction_count"`
}

// FinancialReport sums paid rental income for a month.
type FinancialReport struct {
	Year             int   `json:"year"`
	Month            int   `json:"month"`
	TotalIncomeCents int64 `json:"total_income_cents"`
}
