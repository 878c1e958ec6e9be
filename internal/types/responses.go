package types

// Envelope is the uniform response body for every API operation.
type Envelope struct {
	StatusCode    int         `json:"statusCode"`
	StatusMessage string      `json:"statusMessage"`
	Message       string      `json:"message"`
	Data          interface{} `json:"data,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Currency  string `json:"currency"`
	IsDemo    bool   `json:"is_demo"`
}

// AccountResponse carries the derived totals alongside the stored fields.
type AccountResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Color          string  `json:"color"`
	InitialBalance float64 `json:"initial_balance"`
	TotalIncome    float64 `json:"total_income"`
	TotalExpense   float64 `json:"total_expense"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Type        int    `json:"type"`
}

// CategoryStatResponse is a category plus its aggregated expense total.
type CategoryStatResponse struct {
	CategoryResponse
	TotalAmount float64 `json:"total_amount"`
}

type TransactionResponse struct {
	ID              string  `json:"id"`
	Type            int     `json:"type"`
	CategoryID      string  `json:"category_id"`
	AccountID       string  `json:"account_id"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// HistoryPoint is one gap-filled day in an account's 30-day series.
type HistoryPoint struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type PageMeta struct {
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

type PeriodOverview struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type DashboardResponse struct {
	NetWorth           float64                `json:"netWorth"`
	MonthlyOverview    PeriodOverview         `json:"monthlyOverview"`
	RecentTransactions []TransactionResponse  `json:"recentTransactions"`
	CategoryBreakdown  []CategoryStatResponse `json:"categoryBreakdown"`
}
