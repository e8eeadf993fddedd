package api

import (
	"net/http"

	"github.com/hbnb-crew/hbnb-api/internal/api/shared"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/service"
)

// CityHandler handles city-related API requests.
type CityHandler struct {
	facade *service.Facade
}

// NewCityHandler creates a new CityHandler with the given dependencies.
func NewCityHandler(facade *service.Facade) *CityHandler {
	return &CityHandler{facade: facade}
}

// Create handles POST /cities.
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	city, err := h.facade.CreateCity(r.Context(), req.Name, req.StateID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, city)
}

// Get handles GET /cities/{id}.
func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	city, err := h.facade.GetCity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, city)
}

// List handles GET /cities.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	cities, err := h.facade.ListCities(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cities)
}

// Update handles PUT /cities/{id}.
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateCityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	city, err := h.facade.UpdateCity(r.Context(), id, domain.CityPatch{
		Name: req.Name,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, city)
}

// Delete handles DELETE /cities/{id}. Deleting a city also removes the
// places located in it and their reviews.
func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteCity(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListPlaces handles GET /cities/{id}/places.
func (h *CityHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	places, err := h.facade.ListPlacesByCity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, places)
}
