package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotGetUsers)
		return
	}

	resp := models.UsersResponse{
		Count: len(users),
		Users: make([]models.UserResponse, 0, len(users)),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, user.Public())
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	image, cleanup, err := h.readForm(w, r, &req, map[string]*string{
		"name":     &req.Name,
		"email":    &req.Email,
		"password": &req.Password,
	})
	defer cleanup()
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotCreateUser)
		return
	}
	req.Image = image

	resp, err := h.services.UserService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotCreateUser)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, r, err, app.MsgCouldNotLogin)
		return
	}

	resp, err := h.services.UserService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			err = NewHTTPError(app.MsgIncorrectLogin, http.StatusNotFound, err)
		}
		writeError(w, r, err, app.MsgCouldNotLogin)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, NewHTTPError(app.MsgNotAuthenticated, http.StatusForbidden, ErrNoIdentity), "")
		return
	}

	err := h.services.UserService.DeleteUser(ctx, identity.UserID, chi.URLParam(r, "userId"))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			err = NewHTTPError(app.MsgUserToDeleteMissing, http.StatusNotFound, err)
		}
		writeError(w, r, err, app.MsgCouldNotDeleteUser)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserDeleted}, http.StatusOK)
}
