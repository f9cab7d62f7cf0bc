// Package dataset defines the shape of the demo finance dataset shared by every
// acquisition path. A payload is only ever handed out after it has been decoded
// strictly and validated against this contract.
package dataset

// Payload is the complete dataset: exactly six sections.
type Payload struct {
	User      User      `json:"user"`
	Dashboard Dashboard `json:"dashboard"`
	Invoices  Invoices  `json:"invoices"`
	Expenses  Expenses  `json:"expenses"`
	Wallet    Wallet    `json:"wallet"`
	Profile   Profile   `json:"profile"`
}

// User is the identity section.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	CreatedAt    string `json:"createdAt"`
	LastLogin    string `json:"lastLogin"`
}

// Dashboard holds the headline metrics and the activity feed.
type Dashboard struct {
	Metrics        DashboardMetrics `json:"metrics"`
	QuickActions   []QuickAction    `json:"quickActions"`
	RecentActivity []Activity       `json:"recentActivity"`
}

type DashboardMetrics struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	OutstandingInvoices float64 `json:"outstandingInvoices"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	CashFlow            float64 `json:"cashFlow"`
	RevenueChange       float64 `json:"revenueChange"`
	ExpenseChange       float64 `json:"expenseChange"`
	CashFlowChange      float64 `json:"cashFlowChange"`
}

type QuickAction struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type Activity struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

// Invoices holds the invoice summary and the most recent invoices.
type Invoices struct {
	Summary InvoiceSummary `json:"summary"`
	Recent  []Invoice      `json:"recent"`
}

type InvoiceSummary struct {
	TotalInvoices     int     `json:"totalInvoices"`
	OutstandingAmount float64 `json:"outstandingAmount"`
	PaidThisMonth     float64 `json:"paidThisMonth"`
	OverdueAmount     float64 `json:"overdueAmount"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPending,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

type Invoice struct {
	ID      string        `json:"id"`
	Client  string        `json:"client"`
	Amount  float64       `json:"amount"`
	Status  InvoiceStatus `json:"status"`
	Date    string        `json:"date"`
	DueDate string        `json:"dueDate"`
	Items   []LineItem    `json:"items"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Expenses holds the expense summary, per-category totals and recent expenses.
type Expenses struct {
	Summary    ExpenseSummary    `json:"summary"`
	Categories []ExpenseCategory `json:"categories"`
	Recent     []Expense         `json:"recent"`
}

type ExpenseSummary struct {
	TotalExpenses float64 `json:"totalExpenses"`
	ThisMonth     float64 `json:"thisMonth"`
	LastMonth     float64 `json:"lastMonth"`
	ChangePercent float64 `json:"changePercent"`
}

type ExpenseCategory struct {
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected:
		return true
	}
	return false
}

type Expense struct {
	ID          string        `json:"id"`
	Category    string        `json:"category"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"`
	Status      ExpenseStatus `json:"status"`
	Description string        `json:"description"`
}

// Wallet holds balances, accounts and recent transactions.
type Wallet struct {
	TotalBalance       float64       `json:"totalBalance"`
	BalanceChange      float64       `json:"balanceChange"`
	ChangePercent      float64       `json:"changePercent"`
	Accounts           []Account     `json:"accounts"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}

type Account struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
	Type          string  `json:"type"`
	AccountNumber string  `json:"accountNumber"`
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Account     string          `json:"account"`
}

// Profile holds account statistics and the settings menu.
type Profile struct {
	Stats    ProfileStats `json:"stats"`
	Settings []Setting    `json:"settings"`
}

type ProfileStats struct {
	Invoices int     `json:"invoices"`
	Balance  float64 `json:"balance"`
	Expenses int     `json:"expenses"`
}

type Setting struct {
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Action string `json:"action"`
	Value  *bool  `json:"value,omitempty"`
}
