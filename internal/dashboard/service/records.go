package service

import (
	"context"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/pkg/idx"
)

// RecordsService fronts the guesthouse record repositories. It assigns IDs
// on create; everything else passes through to the store.
type RecordsService struct {
	Store store.Store
}

func (s *RecordsService) ListCheckIns(ctx context.Context) ([]domain.CheckIn, error) {
	return s.Store.CheckIns().ListCheckIns(ctx)
}

func (s *RecordsService) GetCheckIn(ctx context.Context, id string) (domain.CheckIn, error) {
	return s.Store.CheckIns().GetCheckInByID(ctx, id)
}

func (s *RecordsService) CreateCheckIn(ctx context.Context, c domain.CheckIn) (domain.CheckIn, error) {
	c.ID = idx.New().String()
	if err := s.Store.CheckIns().CreateCheckIn(ctx, c); err != nil {
		return domain.CheckIn{}, err
	}
	return c, nil
}

func (s *RecordsService) UpdateCheckIn(ctx context.Context, c domain.CheckIn) error {
	return s.Store.CheckIns().UpdateCheckIn(ctx, c)
}

func (s *RecordsService) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	return s.Store.Incomes().ListIncomes(ctx)
}

func (s *RecordsService) GetIncome(ctx context.Context, id string) (domain.Income, error) {
	return s.Store.Incomes().GetIncomeByID(ctx, id)
}

func (s *RecordsService) CreateIncome(ctx context.Context, i domain.Income) (domain.Income, error) {
	i.ID = idx.New().String()
	if err := s.Store.Incomes().CreateIncome(ctx, i); err != nil {
		return domain.Income{}, err
	}
	return i, nil
}

func (s *RecordsService) UpdateIncome(ctx context.Context, i domain.Income) error {
	return s.Store.Incomes().UpdateIncome(ctx, i)
}

func (s *RecordsService) ListExpenses(ctx context.Context, f store.ExpenseFilter) ([]domain.Expense, int, error) {
	return s.Store.Expenses().ListExpenses(ctx, f)
}

func (s *RecordsService) GetExpense(ctx context.Context, id string) (domain.Expense, error) {
	return s.Store.Expenses().GetExpenseByID(ctx, id)
}

func (s *RecordsService) CreateExpense(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	e.ID = idx.New().String()
	if err := s.Store.Expenses().CreateExpense(ctx, e); err != nil {
		return domain.Expense{}, err
	}
	return e, nil
}

func (s *RecordsService) UpdateExpense(ctx context.Context, e domain.Expense) error {
	return s.Store.Expenses().UpdateExpense(ctx, e)
}

func (s *RecordsService) ListLaundry(ctx context.Context) ([]domain.Laundry, error) {
	return s.Store.Laundry().ListLaundry(ctx)
}

func (s *RecordsService) GetLaundry(ctx context.Context, id string) (domain.Laundry, error) {
	return s.Store.Laundry().GetLaundryByID(ctx, id)
}

func (s *RecordsService) CreateLaundry(ctx context.Context, l domain.Laundry) (domain.Laundry, error) {
	l.ID = idx.New().String()
	if err := s.Store.Laundry().CreateLaundry(ctx, l); err != nil {
		return domain.Laundry{}, err
	}
	return l, nil
}

func (s *RecordsService) UpdateLaundry(ctx context.Context, l domain.Laundry) error {
	return s.Store.Laundry().UpdateLaundry(ctx, l)
}
