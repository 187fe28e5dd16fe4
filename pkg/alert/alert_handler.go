package alert

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type BudgetAlertDTO struct {
	Uid      string  `json:"uid"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Message  string  `json:"message"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
	Severity string  `json:"severity"`
}

type alertListDTO struct {
	Alerts []BudgetAlertDTO `json:"alerts"`
}

type AlertHandler struct {
	alertService AlertService
}

func NewAlertHandler(alertService AlertService) *AlertHandler {
	return &AlertHandler{alertService}
}

func (handler *AlertHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	alerts, err := handler.alertService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := alertListDTO{Alerts: make([]BudgetAlertDTO, 0, len(alerts))}
	for _, alert := range alerts {
		dto.Alerts = append(dto.Alerts, AlertToDTO(alert))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *AlertHandler) Clear(w http.ResponseWriter, r *http.Request) {
	log.Debug("Clearing all budget alerts")
	w.Header().Set("Content-Type", "application/json")

	if err := handler.alertService.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	response := map[string]any{
		"success": true,
		"message": "All budget alerts have been cleared",
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func AlertToDTO(alert BudgetAlert) BudgetAlertDTO {
	return BudgetAlertDTO{
		Uid:      alert.Uid,
		Category: alert.Category,
		Date:     alert.Date,
		Message:  alert.Message,
		Limit:    alert.Limit,
		Spent:    alert.Spent,
		Severity: string(alert.Severity),
	}
}
