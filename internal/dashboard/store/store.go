package store

import (
	"context"
	"errors"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	CheckIns() CheckIns
	Incomes() Incomes
	Expenses() Expenses
	Laundry() Laundry

	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// GetUserByEmail looks up an identity for credential verification.
	// Lookup is case-sensitive exactly as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new identity (id is provided by the caller via ULID).
	CreateUser(ctx context.Context, u domain.User) error
}

type CheckIns interface {
	ListCheckIns(ctx context.Context) ([]domain.CheckIn, error)
	GetCheckInByID(ctx context.Context, id string) (domain.CheckIn, error)
	CreateCheckIn(ctx context.Context, c domain.CheckIn) error
	UpdateCheckIn(ctx context.Context, c domain.CheckIn) error
}

type Incomes interface {
	ListIncomes(ctx context.Context) ([]domain.Income, error)
	GetIncomeByID(ctx context.Context, id string) (domain.Income, error)
	CreateIncome(ctx context.Context, i domain.Income) error
	UpdateIncome(ctx context.Context, i domain.Income) error
}

// ExpenseFilter narrows and pages the expense list. Year and Month select a
// single calendar month and only apply when both are set. Limit of 0
// disables paging; Page is 1-based.
type ExpenseFilter struct {
	Year  int
	Month int
	Page  int
	Limit int
}

type Expenses interface {
	// ListExpenses returns the matching page plus the total count of
	// records matching the filter across all pages.
	ListExpenses(ctx context.Context, f ExpenseFilter) ([]domain.Expense, int, error)
	GetExpenseByID(ctx context.Context, id string) (domain.Expense, error)
	CreateExpense(ctx context.Context, e domain.Expense) error
	UpdateExpense(ctx context.Context, e domain.Expense) error
}

type Laundry interface {
	ListLaundry(ctx context.Context) ([]domain.Laundry, error)
	GetLaundryByID(ctx context.Context, id string) (domain.Laundry, error)
	CreateLaundry(ctx context.Context, l domain.Laundry) error
	UpdateLaundry(ctx context.Context, l domain.Laundry) error
}
