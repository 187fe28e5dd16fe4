package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Chatbot
	r.HandleFunc("/api/ask", deps.AdvisorHandler.Ask).Methods("POST")

	// Expense ledger
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Add).Methods("POST")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expenses/export", deps.ExpenseHandler.Export).Methods("GET")
	r.HandleFunc("/api/expenses/chart", deps.ExpenseHandler.GetChartData).Methods("GET")

	// Budget
	r.HandleFunc("/api/budget/recommendation", deps.BudgetHandler.GenerateRecommendation).Methods("POST")
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetLimits).Methods("GET")
	r.HandleFunc("/api/budget", deps.BudgetHandler.SaveLimits).Methods("PUT")

	// Alerts
	r.HandleFunc("/api/alerts", deps.AlertHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/alerts", deps.AlertHandler.Clear).Methods("DELETE")

	r.HandleFunc("/health", healthCheck).Methods("GET")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
