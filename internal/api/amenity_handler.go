package api

import (
	"net/http"

	"github.com/hbnb-crew/hbnb-api/internal/api/shared"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/service"
)

// AmenityHandler handles amenity-related API requests.
type AmenityHandler struct {
	facade *service.Facade
}

// NewAmenityHandler creates a new AmenityHandler with the given dependencies.
func NewAmenityHandler(facade *service.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

// Create handles POST /amenities.
func (h *AmenityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAmenityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, amenity)
}

// Get handles GET /amenities/{id}.
func (h *AmenityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	amenity, err := h.facade.GetAmenity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenity)
}

// List handles GET /amenities. An optional ?name= query filters by
// name, case-insensitively.
func (h *AmenityHandler) List(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		amenity, err := h.facade.GetAmenityByName(r.Context(), name)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, []*domain.Amenity{amenity})
		return
	}

	amenities, err := h.facade.ListAmenities(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenities)
}

// Update handles PUT /amenities/{id}.
func (h *AmenityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateAmenityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), id, domain.AmenityPatch{
		Name: req.Name,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenity)
}

// Delete handles DELETE /amenities/{id}. The amenity is unlinked from
// every place that offered it.
func (h *AmenityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteAmenity(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
