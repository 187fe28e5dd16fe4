package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saheli/saheli/internal/rest"
	log "github.com/sirupsen/logrus"
)

type RecommendationRequestDTO struct {
	Income     float64 `json:"income"`
	UseAdvisor bool    `json:"useAdvisor,omitempty"`
}

type AllocationResultDTO struct {
	Budget   map[string]float64 `json:"budget"`
	Actual   map[string]float64 `json:"actual"`
	Analysis string             `json:"analysis"`
}

type SaveBudgetRequestDTO struct {
	Budget map[string]float64 `json:"budget"`
}

type BudgetHandler struct {
	budgetService BudgetService
}

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

func (handler *BudgetHandler) GenerateRecommendation(w http.ResponseWriter, r *http.Request) {
	log.Debug("Generating budget recommendation")
	w.Header().Set("Content-Type", "application/json")

	var request RecommendationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.budgetService.GenerateRecommendation(r.Context(), request.Income, request.UseAdvisor)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid income amount",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AllocationResultDTO(result)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) SaveLimits(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request SaveBudgetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	budgets := make([]CategoryBudget, 0, len(request.Budget))
	for category, percentage := range request.Budget {
		budgets = append(budgets, CategoryBudget{Category: category, Percentage: percentage})
	}

	if err := handler.budgetService.SaveLimits(r.Context(), budgets); err != nil {
		if errors.Is(err, ErrValidation) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid budget data",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	response := map[string]string{"message": "Budget saved successfully"}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) GetLimits(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	budgets, err := handler.budgetService.GetLimits(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	budgetMap := make(map[string]float64, len(budgets))
	for _, budget := range budgets {
		budgetMap[budget.Category] = budget.Percentage
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SaveBudgetRequestDTO{Budget: budgetMap}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
