package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saheli/saheli/internal/rest"
	"github.com/saheli/saheli/pkg/alert"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID              int     `json:"id,omitempty"`
	Date            string  `json:"date"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	Note            string  `json:"note,omitempty"`
	PercentOfSalary float64 `json:"percentOfSalary"`
}

type AddExpenseRequestDTO struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
	Income   float64 `json:"income"`
}

type AddExpenseResponseDTO struct {
	Success     bool                  `json:"success"`
	Message     string                `json:"message"`
	Expense     ExpenseDTO            `json:"expense"`
	BudgetAlert *alert.BudgetAlertDTO `json:"budget_alert"`
}

type ChartDataDTO struct {
	Labels   []string  `json:"labels"`
	Expenses []float64 `json:"expenses"`
}

type ExpenseHandler struct {
	expenseService ExpenseService
}

func NewExpenseHandler(expenseService ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService}
}

func (handler *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	log.Debug("Recording new expense")
	w.Header().Set("Content-Type", "application/json")

	var request AddExpenseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expense := Expense{
		Date:     request.Date,
		Category: request.Category,
		Amount:   request.Amount,
		Note:     request.Note,
	}
	stored, budgetAlert, err := handler.expenseService.Record(r.Context(), expense, request.Income)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid input data",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := AddExpenseResponseDTO{
		Success: true,
		Message: "Expense added successfully",
		Expense: ExpenseToDTO(stored),
	}
	if budgetAlert != nil {
		dto := alert.AlertToDTO(*budgetAlert)
		response.BudgetAlert = &dto
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expenses, err := handler.expenseService.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	expensesDTO := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		expensesDTO = append(expensesDTO, ExpenseToDTO(expense))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expensesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) GetChartData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	chart, err := handler.expenseService.ChartData(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ChartDataDTO(chart)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Export(w http.ResponseWriter, r *http.Request) {
	csvData, err := handler.expenseService.ExportCSV(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvData)); err != nil {
		log.Errorf("failed to write CSV response: %v", err)
	}
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:              expense.ID,
		Date:            expense.Date,
		Category:        expense.Category,
		Amount:          expense.Amount,
		Note:            expense.Note,
		PercentOfSalary: expense.PercentOfSalary,
	}
}
