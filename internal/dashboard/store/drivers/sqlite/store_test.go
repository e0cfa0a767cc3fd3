package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/internal/dashboard/store/drivers/sqlite"
	"github.com/rockpoolstays/innboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestUsersRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        "owner@rockpoolstays.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
	}

	t.Run("create and fetch by email", func(t *testing.T) {
		require.NoError(t, st.Users().CreateUser(ctx, u))

		got, err := st.Users().GetUserByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, u.PasswordHash, got.PasswordHash)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		_, err := st.Users().GetUserByEmail(ctx, "OWNER@rockpoolstays.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown email is ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email is ErrAlreadyExists", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})
}

func TestCheckInsRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := domain.CheckIn{
		ID:           idx.New().String(),
		CheckInDate:  time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC),
		People:       4,
		Rooms:        2,
		Nights:       2,
		Holidays:     1,
		Notes:        "late arrival",
	}
	second := domain.CheckIn{
		ID:           idx.New().String(),
		CheckInDate:  time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
		People:       2,
		Rooms:        1,
		Nights:       1,
	}

	require.NoError(t, st.CheckIns().CreateCheckIn(ctx, first))
	require.NoError(t, st.CheckIns().CreateCheckIn(ctx, second))

	t.Run("list orders by check-in date desc", func(t *testing.T) {
		got, err := st.CheckIns().ListCheckIns(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, second.ID, got[0].ID)
		require.Equal(t, first.ID, got[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := st.CheckIns().GetCheckInByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, 4, got.People)
		require.Equal(t, "late arrival", got.Notes)
		require.True(t, got.CheckInDate.Equal(first.CheckInDate))
	})

	t.Run("update", func(t *testing.T) {
		first.People = 5
		first.Notes = "extra guest"
		require.NoError(t, st.CheckIns().UpdateCheckIn(ctx, first))

		got, err := st.CheckIns().GetCheckInByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, 5, got.People)
		require.Equal(t, "extra guest", got.Notes)
	})

	t.Run("update of unknown id is ErrNotFound", func(t *testing.T) {
		missing := first
		missing.ID = idx.New().String()
		require.ErrorIs(t, st.CheckIns().UpdateCheckIn(ctx, missing), store.ErrNotFound)
	})
}

func TestIncomesAndExpensesRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	income := domain.Income{
		ID:     idx.New().String(),
		Date:   time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Item:   "room booking",
		Amount: 4200,
		Type:   "booking",
	}
	require.NoError(t, st.Incomes().CreateIncome(ctx, income))

	got, err := st.Incomes().GetIncomeByID(ctx, income.ID)
	require.NoError(t, err)
	require.InDelta(t, 4200, got.Amount, 0.001)

	expense := domain.Expense{
		ID:       idx.New().String(),
		Date:     time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Category: "cleaning",
		Amount:   350.5,
		Notes:    "monthly supplies",
	}
	require.NoError(t, st.Expenses().CreateExpense(ctx, expense))

	expenses, total, err := st.Expenses().ListExpenses(ctx, store.ExpenseFilter{})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	require.Equal(t, 1, total)
	require.Equal(t, "cleaning", expenses[0].Category)

	expense.Amount = 400
	require.NoError(t, st.Expenses().UpdateExpense(ctx, expense))
	updated, err := st.Expenses().GetExpenseByID(ctx, expense.ID)
	require.NoError(t, err)
	require.InDelta(t, 400, updated.Amount, 0.001)
}

func TestExpensesListFilter(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seed := func(date time.Time, category string) {
		t.Helper()
		require.NoError(t, st.Expenses().CreateExpense(ctx, domain.Expense{
			ID:       idx.New().String(),
			Date:     date,
			Category: category,
			Amount:   100,
		}))
	}
	seed(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "maintenance")
	seed(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), "cleaning")
	seed(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), "utilities")

	t.Run("year and month select one calendar month", func(t *testing.T) {
		got, total, err := st.Expenses().ListExpenses(ctx, store.ExpenseFilter{Year: 2026, Month: 8})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Len(t, got, 2)
		require.Equal(t, "utilities", got[0].Category)
		require.Equal(t, "cleaning", got[1].Category)
	})

	t.Run("month boundary excludes the next month", func(t *testing.T) {
		got, total, err := st.Expenses().ListExpenses(ctx, store.ExpenseFilter{Year: 2025, Month: 1})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Len(t, got, 1)
		require.Equal(t, "maintenance", got[0].Category)
	})

	t.Run("filter applies only when both year and month are set", func(t *testing.T) {
		got, total, err := st.Expenses().ListExpenses(ctx, store.ExpenseFilter{Year: 2026})
		require.NoError(t, err)
		require.Equal(t, 3, total)
		require.Len(t, got, 3)
	})

	t.Run("paging keeps the total across pages", func(t *testing.T) {
		first, total, err := st.Expenses().ListExpenses(ctx, store.ExpenseFilter{Page: 1, Limit: 2})
		require.NoError(t, err)
		require.Equal(t, 3, total)
		require.Len(t, first, 2)

		second, total, err := st.Expenses().ListExpenses(ctx, store.ExpenseFilter{Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Equal(t, 3, total)
		require.Len(t, second, 1)
		require.NotEqual(t, first[0].ID, second[0].ID)
		require.NotEqual(t, first[1].ID, second[0].ID)
	})
}

func TestLaundryRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	l := domain.Laundry{
		ID:            idx.New().String(),
		DeliveryDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		RetrievalDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		DuvetCovers:   6,
		BedSheets:     6,
		Pillowcases:   12,
		LargeTowels:   8,
		SmallTowels:   8,
	}
	require.NoError(t, st.Laundry().CreateLaundry(ctx, l))

	got, err := st.Laundry().GetLaundryByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, 12, got.Pillowcases)

	l.SmallTowels = 10
	require.NoError(t, st.Laundry().UpdateLaundry(ctx, l))

	list, err := st.Laundry().ListLaundry(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 10, list[0].SmallTowels)
}
