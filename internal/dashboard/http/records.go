package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
	"github.com/rockpoolstays/innboard/internal/dashboard/service"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/pkg/httpx"
	"github.com/rockpoolstays/innboard/pkg/slogx"
)

// RecordsHandler exposes the guesthouse record models over JSON. All of its
// routes sit behind the session gate.
type RecordsHandler struct {
	Records *service.RecordsService
}

// writeRecordError maps service errors onto the API error vocabulary.
func writeRecordError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Record not found")
	default:
		slogx.FromContext(r.Context()).Error("record operation failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *RecordsHandler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	records, err := h.Records.ListCheckIns(r.Context())
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, records)
}

func (h *RecordsHandler) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	record, err := h.Records.GetCheckIn(r.Context(), r.PathValue("id"))
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var record domain.CheckIn
	if !decodeBody(w, r, &record) {
		return
	}
	created, err := h.Records.CreateCheckIn(r.Context(), record)
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RecordsHandler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	var record domain.CheckIn
	if !decodeBody(w, r, &record) {
		return
	}
	record.ID = r.PathValue("id")
	if err := h.Records.UpdateCheckIn(r.Context(), record); err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	records, err := h.Records.ListIncomes(r.Context())
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, records)
}

func (h *RecordsHandler) GetIncome(w http.ResponseWriter, r *http.Request) {
	record, err := h.Records.GetIncome(r.Context(), r.PathValue("id"))
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var record domain.Income
	if !decodeBody(w, r, &record) {
		return
	}
	created, err := h.Records.CreateIncome(r.Context(), record)
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RecordsHandler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	var record domain.Income
	if !decodeBody(w, r, &record) {
		return
	}
	record.ID = r.PathValue("id")
	if err := h.Records.UpdateIncome(r.Context(), record); err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}

// expensePageSize caps records per expense list page.
const expensePageSize = 30

type expenseListResponse struct {
	Records    []domain.Expense `json:"records"`
	TotalCount int              `json:"totalCount"`
}

// ListExpenses serves the paged expense list. Optional year+month query
// parameters restrict to one calendar month; malformed values are ignored
// and yield the unfiltered list.
func (h *RecordsHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.ExpenseFilter{Page: 1, Limit: expensePageSize}

	if y, err := strconv.Atoi(q.Get("year")); err == nil {
		f.Year = y
	}
	if m, err := strconv.Atoi(q.Get("month")); err == nil {
		f.Month = m
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		f.Page = p
	}

	records, total, err := h.Records.ListExpenses(r.Context(), f)
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.Expense{}
	}
	httpx.WriteJSON(w, http.StatusOK, expenseListResponse{Records: records, TotalCount: total})
}

func (h *RecordsHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	record, err := h.Records.GetExpense(r.Context(), r.PathValue("id"))
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var record domain.Expense
	if !decodeBody(w, r, &record) {
		return
	}
	created, err := h.Records.CreateExpense(r.Context(), record)
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RecordsHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var record domain.Expense
	if !decodeBody(w, r, &record) {
		return
	}
	record.ID = r.PathValue("id")
	if err := h.Records.UpdateExpense(r.Context(), record); err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) ListLaundry(w http.ResponseWriter, r *http.Request) {
	records, err := h.Records.ListLaundry(r.Context())
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, records)
}

func (h *RecordsHandler) GetLaundry(w http.ResponseWriter, r *http.Request) {
	record, err := h.Records.GetLaundry(r.Context(), r.PathValue("id"))
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) CreateLaundry(w http.ResponseWriter, r *http.Request) {
	var record domain.Laundry
	if !decodeBody(w, r, &record) {
		return
	}
	created, err := h.Records.CreateLaundry(r.Context(), record)
	if err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RecordsHandler) UpdateLaundry(w http.ResponseWriter, r *http.Request) {
	var record domain.Laundry
	if !decodeBody(w, r, &record) {
		return
	}
	record.ID = r.PathValue("id")
	if err := h.Records.UpdateLaundry(r.Context(), record); err != nil {
		writeRecordError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, record)
}
