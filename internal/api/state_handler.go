package api

import (
	"net/http"

	"github.com/hbnb-crew/hbnb-api/internal/api/shared"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/service"
)

// StateHandler handles state-related API requests.
type StateHandler struct {
	facade *service.Facade
}

// NewStateHandler creates a new StateHandler with the given dependencies.
func NewStateHandler(facade *service.Facade) *StateHandler {
	return &StateHandler{facade: facade}
}

// Create handles POST /states.
func (h *StateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.facade.CreateState(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, state)
}

// Get handles GET /states/{id}.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	state, err := h.facade.GetState(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, state)
}

// List handles GET /states.
func (h *StateHandler) List(w http.ResponseWriter, r *http.Request) {
	states, err := h.facade.ListStates(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, states)
}

// Update handles PUT /states/{id}.
func (h *StateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.facade.UpdateState(r.Context(), id, domain.StatePatch{
		Name: req.Name,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, state)
}

// Delete handles DELETE /states/{id}. Deleting a state also removes
// its cities, the places in those cities, and their reviews.
func (h *StateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteState(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListCities handles GET /states/{id}/cities.
func (h *StateHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	cities, err := h.facade.ListCitiesByState(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cities)
}
