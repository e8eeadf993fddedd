package api

import (
	"net/http"

	"github.com/hbnb-crew/hbnb-api/internal/api/shared"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/service"
)

// PlaceHandler handles place-related API requests.
type PlaceHandler struct {
	facade *service.Facade
}

// NewPlaceHandler creates a new PlaceHandler with the given dependencies.
func NewPlaceHandler(facade *service.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// Create handles POST /places.
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
		CityID:      req.CityID,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, place)
}

// Get handles GET /places/{id}.
func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	place, err := h.facade.GetPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, place)
}

// List handles GET /places.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.ListPlaces(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, places)
}

// Update handles PUT /places/{id}.
func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	place, err := h.facade.UpdatePlace(r.Context(), id, domain.PlacePatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CityID:      req.CityID,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, place)
}

// Delete handles DELETE /places/{id}. Deleting a place also removes
// its reviews.
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.facade.DeletePlace(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListReviews handles GET /places/{id}/reviews.
func (h *PlaceHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.facade.ListReviewsByPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviews)
}
