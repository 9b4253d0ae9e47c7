// Package category defines the closed vocabularies transactions are
// classified with: income and expense categories, payment methods and
// recurrence intervals.
package category

import "slices"

// PaymentMethod is how a transaction was paid.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "Cash"
	PaymentCreditCard    PaymentMethod = "Credit Card"
	PaymentDebitCard     PaymentMethod = "Debit Card"
	PaymentBankTransfer  PaymentMethod = "Bank Transfer"
	PaymentDigitalWallet PaymentMethod = "Digital Wallet"
)

// Interval is how often a recurring transaction repeats. Recurrence is
// informational metadata only; nothing in the system expands it into
// future transactions.
type Interval string

const (
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
	IntervalYearly  Interval = "yearly"
)

var Income = []string{
	"Salary",
	"Freelance Earnings",
	"Investments",
	"Passive Income",
	"Bonuses & Gifts",
}

var Expense = []string{
	"Rent/Mortgage",
	"Groceries",
	"Entertainment",
	"Transportation",
	"Debt Repayment",
}

var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentBankTransfer,
	PaymentDigitalWallet,
}

var Intervals = []Interval{
	IntervalWeekly,
	IntervalMonthly,
	IntervalYearly,
}

func IsIncome(name string) bool {
	return slices.Contains(Income, name)
}

func IsExpense(name string) bool {
	return slices.Contains(Expense, name)
}

func (p PaymentMethod) Valid() bool {
	return slices.Contains(PaymentMethods, p)
}

func (i Interval) Valid() bool {
	return slices.Contains(Intervals, i)
}
