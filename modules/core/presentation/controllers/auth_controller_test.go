package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiqsoft/routecore/modules/core/domain/entities/user"
	"github.com/hiqsoft/routecore/modules/core/services"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/httpapi"
)

type verifierStub struct {
	userID int64
	err    error
}

func (v *verifierStub) Verify(context.Context, string, string) (int64, error) {
	if v.err != nil {
		return 0, v.err
	}
	return v.userID, nil
}

type userRepoStub struct {
	users map[int64]*user.User
}

func (s *userRepoStub) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newLoginRouter(verifier *verifierStub) *mux.Router {
	service := services.NewAuthService(
		verifier,
		&userRepoStub{users: map[int64]*user.User{7: {ID: 7, Username: "operator"}}},
		configuration.AuthOptions{Secret: "test-secret", TokenDuration: time.Hour},
	)
	r := mux.NewRouter()
	NewAuthController(service, configuration.RateLimitOptions{Enabled: false}).Register(r)
	return r
}

func postLogin(t *testing.T, router *mux.Router, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthController_Login_Success(t *testing.T) {
	router := newLoginRouter(&verifierStub{userID: 7})

	rec := postLogin(t, router, map[string]any{"username": "operator", "password": "password"})
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope httpapi.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Equal(t, "success", envelope.Status)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestAuthController_Login_InvalidCredentials(t *testing.T) {
	router := newLoginRouter(&verifierStub{err: user.ErrInvalidCredentials})

	rec := postLogin(t, router, map[string]any{"username": "operator", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope httpapi.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Code)
}

func TestAuthController_Login_MissingFields(t *testing.T) {
	router := newLoginRouter(&verifierStub{userID: 7})

	rec := postLogin(t, router, map[string]any{"username": "operator"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope httpapi.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Equal(t, "VALIDATION_FAILED", envelope.Code)
}
