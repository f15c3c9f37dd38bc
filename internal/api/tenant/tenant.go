package tenant

import (
	dto "auth_backend/internal/api/dto/tenant"
	"auth_backend/internal/converter"
	"auth_backend/internal/model"
	"auth_backend/internal/service"
	"auth_backend/pkg/req"
	"auth_backend/pkg/resp"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.TenantService
}

type Handler struct {
	serv service.TenantService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create создаёт арендатора
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateTenantRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if requestBody.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.serv.Create(r.Context(), converter.CreateTenantRequestToModel(&requestBody))
	if err != nil {
		log.Println("Create tenant error:", err)
		http.Error(w, "create tenant failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{"id": id})
}

// List возвращает всех арендаторов
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.serv.List(r.Context())
	if err != nil {
		log.Println("List tenants error:", err)
		http.Error(w, "list tenants failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTenantResponses(tenants))
}

// GetByID возвращает арендатора по ID
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tenant, err := h.serv.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}
		log.Println("Get tenant error:", err)
		http.Error(w, "get tenant failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTenantResponse(tenant))
}

// Update обновляет арендатора по ID
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	requestBody, err := req.Decode[dto.UpdateTenantRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err = h.serv.Update(r.Context(), converter.UpdateTenantRequestToModel(id, &requestBody))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}
		log.Println("Update tenant error:", err)
		http.Error(w, "update tenant failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete удаляет арендатора по ID
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = h.serv.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}
		log.Println("Delete tenant error:", err)
		http.Error(w, "delete tenant failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
