package advisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saheli/saheli/internal/rest"
	log "github.com/sirupsen/logrus"
)

type AskRequestDTO struct {
	Question string `json:"question"`
}

type AskResponseDTO struct {
	Response string `json:"response"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request AskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	answer, err := handler.service.AskQuestion(r.Context(), request.Question)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Question cannot be empty",
				Details: err.Error(),
			})
			return
		}
		log.Errorf("question answering failed: %v", err)
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Failed to get an answer",
			Details: err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AskResponseDTO{Response: answer}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
