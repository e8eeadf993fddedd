package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/platform/memory"
	"github.com/hbnb-crew/hbnb-api/internal/service"
	"github.com/hbnb-crew/hbnb-api/internal/service/auth"
)

// plainHasher avoids bcrypt's cost in handler tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// testEnv wires the handlers into a router the way the server does,
// minus the auth middleware; the middleware has its own tests.
type testEnv struct {
	router http.Handler
	facade *service.Facade
	jwt    auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	facade, err := service.NewFacade(service.FacadeDeps{
		Users:     memory.NewUserStore(),
		Places:    memory.NewPlaceStore(),
		Reviews:   memory.NewReviewStore(),
		Amenities: memory.NewAmenityStore(),
		States:    memory.NewStateStore(),
		Cities:    memory.NewCityStore(),
		Hasher:    plainHasher{},
	})
	require.NoError(t, err)

	jwtService := auth.NewTestJWTService(
		"test-secret-thirty-two-characters-long", 15*time.Minute, nil)

	authHandler := NewAuthHandler(facade, jwtService)
	userHandler := NewUserHandler(facade)
	placeHandler := NewPlaceHandler(facade)
	reviewHandler := NewReviewHandler(facade)
	amenityHandler := NewAmenityHandler(facade)
	stateHandler := NewStateHandler(facade)
	cityHandler := NewCityHandler(facade)

	r := chi.NewRouter()
	r.Post("/auth/login", authHandler.Login)

	r.Post("/users", userHandler.Create)
	r.Get("/users", userHandler.List)
	r.Get("/users/{id}", userHandler.Get)
	r.Put("/users/{id}", userHandler.Update)
	r.Put("/users/{id}/password", userHandler.ChangePassword)
	r.Delete("/users/{id}", userHandler.Delete)

	r.Post("/places", placeHandler.Create)
	r.Get("/places", placeHandler.List)
	r.Get("/places/{id}", placeHandler.Get)
	r.Get("/places/{id}/reviews", placeHandler.ListReviews)
	r.Put("/places/{id}", placeHandler.Update)
	r.Delete("/places/{id}", placeHandler.Delete)

	r.Post("/reviews", reviewHandler.Create)
	r.Get("/reviews/{id}", reviewHandler.Get)
	r.Put("/reviews/{id}", reviewHandler.Update)
	r.Delete("/reviews/{id}", reviewHandler.Delete)

	r.Post("/amenities", amenityHandler.Create)
	r.Get("/amenities", amenityHandler.List)
	r.Get("/amenities/{id}", amenityHandler.Get)
	r.Put("/amenities/{id}", amenityHandler.Update)
	r.Delete("/amenities/{id}", amenityHandler.Delete)

	r.Post("/states", stateHandler.Create)
	r.Get("/states/{id}/cities", stateHandler.ListCities)
	r.Delete("/states/{id}", stateHandler.Delete)

	r.Post("/cities", cityHandler.Create)
	r.Get("/cities/{id}/places", cityHandler.ListPlaces)

	return &testEnv{router: r, facade: facade, jwt: jwtService}
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(data)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func (env *testEnv) registerUser(t *testing.T, email string) domain.User {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/users", RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "correct horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[domain.User](t, rec)
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users", RegisterRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "correct horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	user := decodeBody[domain.User](t, rec)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotContains(t, rec.Body.String(), "hashed:", "password hash must not be serialized")
}

func TestCreateUserEndpointRejectsBadPayloads(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", `{"first_name": `},
		{"unknown field", `{"first_name":"A","last_name":"B","email":"a@b.com","password":"longenough","role":"admin"}`},
		{"missing password", `{"first_name":"A","last_name":"B","email":"a@b.com"}`},
		{"short password", `{"first_name":"A","last_name":"B","email":"a@b.com","password":"short"}`},
		{"bad email", `{"first_name":"A","last_name":"B","email":"not-an-email","password":"longenough"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateUserEndpointDuplicateEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.registerUser(t, "alice@example.com")

	rec := env.do(t, http.MethodPost, "/users", RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "Alice@Example.com",
		Password:  "correct horse",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := decodeBody[map[string]interface{}](t, rec)
	assert.Equal(t, "Email already exists", resp["error"])
}

func TestGetUserEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := env.registerUser(t, "alice@example.com")

	rec := env.do(t, http.MethodGet, "/users/"+user.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUserEndpointRejectsImmutableFields(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := env.registerUser(t, "alice@example.com")

	// The password is not updatable through this endpoint.
	rec := env.do(t, http.MethodPut, "/users/"+user.ID.String(),
		`{"first_name":"Alicia","password":"sneaky password"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The plain rename still works.
	rec = env.do(t, http.MethodPut, "/users/"+user.ID.String(),
		`{"first_name":"Alicia"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.User](t, rec)
	assert.Equal(t, "Alicia", updated.FirstName)
}

func TestChangePasswordEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := env.registerUser(t, "alice@example.com")

	rec := env.do(t, http.MethodPut, "/users/"+user.ID.String()+"/password",
		ChangePasswordRequest{Password: "new password"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", LoginRequest{
		Email: "alice@example.com", Password: "new password",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := env.registerUser(t, "alice@example.com")

	rec := env.do(t, http.MethodPost, "/auth/login", LoginRequest{
		Email: "alice@example.com", Password: "correct horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[AuthResponse](t, rec)
	assert.Equal(t, user.ID, resp.UserID)

	claims, err := env.jwt.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.registerUser(t, "alice@example.com")

	rec := env.do(t, http.MethodPost, "/auth/login", LoginRequest{
		Email: "alice@example.com", Password: "wrong password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", LoginRequest{
		Email: "nobody@example.com", Password: "correct horse",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeBody[map[string]interface{}](t, rec)
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestPlaceEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.registerUser(t, "owner@example.com")

	rec := env.do(t, http.MethodPost, "/places", CreatePlaceRequest{
		Title:   "Cozy Cabin",
		Price:   120,
		OwnerID: owner.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	place := decodeBody[domain.Place](t, rec)

	// Unknown owner is a 404 on the referenced resource.
	rec = env.do(t, http.MethodPost, "/places", CreatePlaceRequest{
		Title: "Orphan", Price: 10, OwnerID: uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// owner_id is immutable; strict decoding rejects it on update.
	rec = env.do(t, http.MethodPut, "/places/"+place.ID.String(),
		fmt.Sprintf(`{"owner_id":%q}`, uuid.NewString()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/places/"+place.ID.String(), `{"price":150}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.Place](t, rec)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, owner.ID, updated.OwnerID)

	rec = env.do(t, http.MethodDelete, "/places/"+place.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(t, http.MethodGet, "/places/"+place.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.registerUser(t, "owner@example.com")
	guest := env.registerUser(t, "guest@example.com")

	rec := env.do(t, http.MethodPost, "/places", CreatePlaceRequest{
		Title: "Cabin", Price: 100, OwnerID: owner.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	place := decodeBody[domain.Place](t, rec)

	// Owners cannot review their own place.
	rec = env.do(t, http.MethodPost, "/reviews", CreateReviewRequest{
		Text: "Lovely", Rating: 5, UserID: owner.ID, PlaceID: place.ID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/reviews", CreateReviewRequest{
		Text: "Lovely", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	review := decodeBody[domain.Review](t, rec)

	// One review per user per place.
	rec = env.do(t, http.MethodPost, "/reviews", CreateReviewRequest{
		Text: "Again", Rating: 4, UserID: guest.ID, PlaceID: place.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// user_id is immutable on update.
	rec = env.do(t, http.MethodPut, "/reviews/"+review.ID.String(),
		fmt.Sprintf(`{"user_id":%q}`, uuid.NewString()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/reviews/"+review.ID.String(), `{"rating":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.Review](t, rec)
	assert.Equal(t, 3, updated.Rating)

	rec = env.do(t, http.MethodGet, "/places/"+place.ID.String()+"/reviews", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reviews := decodeBody[[]domain.Review](t, rec)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)
}

func TestAmenityEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/amenities", CreateAmenityRequest{Name: "WiFi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	wifi := decodeBody[domain.Amenity](t, rec)

	rec = env.do(t, http.MethodPost, "/amenities", CreateAmenityRequest{Name: "Pool"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/amenities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeBody[[]domain.Amenity](t, rec)
	assert.Len(t, all, 2)

	// Name filter is case-insensitive and returns a single-element list.
	rec = env.do(t, http.MethodGet, "/amenities?name=wifi", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decodeBody[[]domain.Amenity](t, rec)
	require.Len(t, filtered, 1)
	assert.Equal(t, wifi.ID, filtered[0].ID)

	rec = env.do(t, http.MethodGet, "/amenities?name=sauna", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLocationEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.registerUser(t, "owner@example.com")

	rec := env.do(t, http.MethodPost, "/states", CreateStateRequest{Name: "Oregon"})
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decodeBody[domain.State](t, rec)

	rec = env.do(t, http.MethodPost, "/cities", CreateCityRequest{
		Name: "Portland", StateID: state.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	city := decodeBody[domain.City](t, rec)

	rec = env.do(t, http.MethodPost, "/cities", CreateCityRequest{
		Name: "Nowhere", StateID: uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/states/"+state.ID.String()+"/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cities := decodeBody[[]domain.City](t, rec)
	require.Len(t, cities, 1)
	assert.Equal(t, city.ID, cities[0].ID)

	rec = env.do(t, http.MethodPost, "/places", CreatePlaceRequest{
		Title: "In town", Price: 90, OwnerID: owner.ID, CityID: city.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	place := decodeBody[domain.Place](t, rec)

	rec = env.do(t, http.MethodGet, "/cities/"+city.ID.String()+"/places", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	places := decodeBody[[]domain.Place](t, rec)
	require.Len(t, places, 1)
	assert.Equal(t, place.ID, places[0].ID)

	// Deleting the state takes the city and the place with it.
	rec = env.do(t, http.MethodDelete, "/states/"+state.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(t, http.MethodGet, "/places/"+place.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUserEndpointCascades(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.registerUser(t, "owner@example.com")
	guest := env.registerUser(t, "guest@example.com")

	rec := env.do(t, http.MethodPost, "/places", CreatePlaceRequest{
		Title: "Cabin", Price: 100, OwnerID: owner.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	place := decodeBody[domain.Place](t, rec)

	rec = env.do(t, http.MethodPost, "/reviews", CreateReviewRequest{
		Text: "Nice", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	review := decodeBody[domain.Review](t, rec)

	rec = env.do(t, http.MethodDelete, "/users/"+owner.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/places/"+place.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = env.do(t, http.MethodGet, "/reviews/"+review.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = env.do(t, http.MethodGet, "/users/"+guest.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
