package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/services"
	"github.com/sisoputnfrba/tp-memoria-virtual/utils/list"
	webHandlers "github.com/sisoputnfrba/tp-memoria-virtual/utils/web/handlers"
	"github.com/sisoputnfrba/tp-memoria-virtual/utils/web/server"
)

type TranslateRequest struct {
	Address *int `json:"address"`
}

type BatchResponse struct {
	Results []models.TranslationResult `json:"results"`
	Skipped int                        `json:"skipped"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewRouter arma las rutas del modo servidor sobre un único MemoryService.
func NewRouter(service *services.MemoryService) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", webHandlers.HandshakeHandler("Bienvenido al módulo de Memoria"))
	mux.HandleFunc("GET /memoria", webHandlers.HandshakeHandler("Memoria en funcionamiento 🚀"))
	mux.HandleFunc("POST /memoria/traducir", TranslateHandler(service))
	mux.HandleFunc("POST /memoria/traducir/lote", TranslateBatchHandler(service))
	mux.HandleFunc("GET /memoria/estadisticas", StatisticsHandler(service))
	mux.HandleFunc("GET /memoria/clock", ClockHandler(service))
	return mux
}

func TranslateHandler(service *services.MemoryService) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TranslateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Invalid request", "error", err)
			server.SendJsonResponseWithStatus(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
			return
		}
		if req.Address == nil {
			slog.Error("Invalid request: falta el campo address")
			server.SendJsonResponseWithStatus(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request: missing address"})
			return
		}

		result, err := service.Translate(*req.Address)
		if errors.Is(err, models.ErrInvalidAddress) {
			slog.Warn("Dirección lógica inválida", "address", *req.Address)
			server.SendJsonResponseWithStatus(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if err != nil {
			slog.Error(fmt.Sprintf("Error fatal traduciendo la dirección %d: %v", *req.Address, err))
			server.SendJsonResponseWithStatus(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		slog.Debug("Dirección traducida", "logical", result.LogicalAddress, "physical", result.PhysicalAddress, "value", result.Value)
		server.SendJsonResponse(w, result)
	}
}

// TranslateBatchHandler recibe un cuerpo de texto con una dirección por línea, con las mismas reglas que
// el modo batch, y responde los resultados en orden. Cada dirección toma el lock por separado.
func TranslateBatchHandler(service *services.MemoryService) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		results := list.NewArrayList[models.TranslationResult](0)
		skipped, err := services.ScanAddresses(r.Body, func(address int) error {
			result, err := service.Translate(address)
			if err != nil {
				return fmt.Errorf("error traduciendo la dirección %d: %w", address, err)
			}
			results.Add(result)
			return nil
		})
		if err != nil {
			slog.Error("Error traduciendo lote", "translated", results.Size(), "error", err)
			server.SendJsonResponseWithStatus(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		slog.Debug(fmt.Sprintf("Lote traducido: %d direcciones, %d líneas ignoradas", results.Size(), skipped))
		server.SendJsonResponse(w, BatchResponse{Results: results.GetAll(), Skipped: skipped})
	}
}

func StatisticsHandler(service *services.MemoryService) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, service.Statistics())
	}
}

func ClockHandler(service *services.MemoryService) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, service.ClockSnapshot())
	}
}
