package user

import (
	dto "auth_backend/internal/api/dto/user"
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
	Serv service.UserService
}

type Handler struct {
	serv service.UserService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create создаёт пользователя от имени администратора
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateUserRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if requestBody.Email == "" || requestBody.Password == "" || requestBody.Role == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.serv.Create(r.Context(), converter.CreateUserRequestToModel(&requestBody))
	if err != nil {
		log.Println("Create user error:", err)
		http.Error(w, "create user failed", http.StatusConflict)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{"id": id})
}

// List возвращает всех пользователей
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.serv.List(r.Context())
	if err != nil {
		log.Println("List users error:", err)
		http.Error(w, "list users failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponses(users))
}

// GetByID возвращает пользователя по ID
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	user, err := h.serv.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Println("Get user error:", err)
		http.Error(w, "get user failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(user))
}

// Update обновляет пользователя по ID
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	requestBody, err := req.Decode[dto.UpdateUserRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err = h.serv.Update(r.Context(), converter.UpdateUserRequestToModel(id, &requestBody))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Println("Update user error:", err)
		http.Error(w, "update user failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete удаляет пользователя и все его сессии
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = h.serv.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Println("Delete user error:", err)
		http.Error(w, "delete user failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
