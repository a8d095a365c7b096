// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPlaceByID(w http.ResponseWriter, r *http.Request) {
	place, err := h.services.PlaceService.GetPlaceByID(r.Context(), chi.URLParam(r, "placeId"))
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotGetPlace)
		return
	}

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusOK)
}

// getPlacesByUserID answers 200 with an empty list for users without places.
func (h *Handler) getPlacesByUserID(w http.ResponseWriter, r *http.Request) {
	places, err := h.services.PlaceService.ListPlacesByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotGetPlaces)
		return
	}
	if places == nil {
		places = []models.Place{}
	}

	utils.WriteJSON(w, models.PlacesResponse{Count: len(places), Places: places}, http.StatusOK)
}

func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, NewHTTPError(app.MsgNotAuthenticated, http.StatusForbidden, ErrNoIdentity), "")
		return
	}

	var req models.CreatePlaceRequest
	image, cleanup, err := h.readForm(w, r, &req, map[string]*string{
		"title":       &req.Title,
		"description": &req.Description,
		"address":     &req.Address,
	})
	defer cleanup()
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotCreate)
		return
	}
	req.CreatorID = identity.UserID
	req.Image = image

	place, err := h.services.PlaceService.CreatePlace(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotCreate)
		return
	}

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusCreated)
}

func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, NewHTTPError(app.MsgNotAuthenticated, http.StatusForbidden, ErrNoIdentity), "")
		return
	}

	var req models.UpdatePlaceRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, r, err, app.MsgCouldNotUpdate)
		return
	}
	req.PlaceID = chi.URLParam(r, "placeId")
	req.RequesterID = identity.UserID

	place, err := h.services.PlaceService.UpdatePlace(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgCouldNotUpdate)
		return
	}

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusOK)
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, NewHTTPError(app.MsgNotAuthenticated, http.StatusForbidden, ErrNoIdentity), "")
		return
	}

	if err := h.services.PlaceService.DeletePlace(ctx, identity.UserID, chi.URLParam(r, "placeId")); err != nil {
		writeError(w, r, err, app.MsgCouldNotDelete)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPlaceDeleted}, http.StatusOK)
}
