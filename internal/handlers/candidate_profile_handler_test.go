package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProfile_RequiresPrincipal(t *testing.T) {
	env := newTestEnv(t, false)

	w, body := env.request(t, http.MethodPost, "/api/candidate/profile/save", "", map[string]interface{}{
		"firstName": "Alice",
		"userId":    42,
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized: Please login first", body["message"])
	assert.Empty(t, env.profileRepo.profiles)
}

func TestSaveProfile_WithSession(t *testing.T) {
	env := newTestEnv(t, false)
	env.signup(t, "/api/auth/signup/candidate", "alice", "p@ss")
	token := env.loginToken(t, "/api/auth/login/candidate", "alice", "p@ss")

	w, body := env.request(t, http.MethodPost, "/api/candidate/profile/save", token, map[string]interface{}{
		"firstName":   "Alice",
		"lastName":    "Nguyen",
		"headline":    "Backend developer",
		"gender":      "FEMALE",
		"dateOfBirth": "1990-04-12",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Profile saved successfully", body["message"])

	userID := env.userRepo.users["alice"].ID
	stored := env.profileRepo.profiles[userID]
	require.NotNil(t, stored)
	assert.Equal(t, "Alice", stored.FirstName)
	assert.True(t, stored.IsProfileComplete)
}

func TestSaveProfile_SessionOutranksBodyUserID(t *testing.T) {
	env := newTestEnv(t, true)
	env.signup(t, "/api/auth/signup/candidate", "alice", "p@ss")
	token := env.loginToken(t, "/api/auth/login/candidate", "alice", "p@ss")

	w, _ := env.request(t, http.MethodPost, "/api/candidate/profile/save", token, map[string]interface{}{
		"firstName": "Alice",
		"userId":    999,
	})

	require.Equal(t, http.StatusOK, w.Code)
	userID := env.userRepo.users["alice"].ID
	require.NotNil(t, env.profileRepo.profiles[userID])
	assert.Nil(t, env.profileRepo.profiles[999])
}

func TestSaveProfile_BodyUserIDFallback(t *testing.T) {
	// No bearer token at all; the body id is honored only when the
	// fallback is enabled in config.
	env := newTestEnv(t, true)

	w, _ := env.request(t, http.MethodPost, "/api/candidate/profile/save", "", map[string]interface{}{
		"firstName": "Sam",
		"userId":    7,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.profileRepo.profiles[7])
	assert.Equal(t, "Sam", env.profileRepo.profiles[7].FirstName)
}

func TestSaveProfile_InvalidGender(t *testing.T) {
	env := newTestEnv(t, false)
	env.signup(t, "/api/auth/signup/candidate", "alice", "p@ss")
	token := env.loginToken(t, "/api/auth/login/candidate", "alice", "p@ss")

	w, body := env.request(t, http.MethodPost, "/api/candidate/profile/save", token, map[string]interface{}{
		"firstName": "Alice",
		"gender":    "INVALID_ENUM_VALUE",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, env.profileRepo.profiles)
}

func TestSaveProfile_MalformedToken(t *testing.T) {
	env := newTestEnv(t, false)

	w, _ := env.request(t, http.MethodPost, "/api/candidate/profile/save", "not-a-jwt", map[string]interface{}{
		"firstName": "Alice",
	})

	// Optional auth tolerates the bad token; the service then rejects
	// the request for lack of a principal.
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.profileRepo.profiles)
}

func TestGetProfile_RequiresSession(t *testing.T) {
	env := newTestEnv(t, false)

	w, body := env.request(t, http.MethodGet, "/api/candidate/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized: Please login first", body["message"])
}

func TestGetProfile_EmptyDefaultThenStored(t *testing.T) {
	env := newTestEnv(t, false)
	env.signup(t, "/api/auth/signup/candidate", "alice", "p@ss")
	token := env.loginToken(t, "/api/auth/login/candidate", "alice", "p@ss")

	// Before any save: a zero-value profile object, not an error.
	w, body := env.request(t, http.MethodGet, "/api/candidate/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["id"])
	assert.Empty(t, body["firstName"])
	assert.Equal(t, false, body["isProfileComplete"])

	w, _ = env.request(t, http.MethodPost, "/api/candidate/profile/save", token, map[string]interface{}{
		"firstName": "Alice",
		"headline":  "Backend developer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = env.request(t, http.MethodGet, "/api/candidate/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", body["firstName"])
	assert.Equal(t, "Backend developer", body["headline"])
	assert.Equal(t, true, body["isProfileComplete"])
}

func TestGetCandidateID(t *testing.T) {
	env := newTestEnv(t, false)
	env.signup(t, "/api/auth/signup/candidate", "alice", "p@ss")
	token := env.loginToken(t, "/api/auth/login/candidate", "alice", "p@ss")

	// 404 before a profile exists.
	w, body := env.request(t, http.MethodGet, "/api/candidate/id", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Profile not found", body["message"])

	w, _ = env.request(t, http.MethodPost, "/api/candidate/profile/save", token, map[string]interface{}{
		"firstName": "Alice",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = env.request(t, http.MethodGet, "/api/candidate/id", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	userID := env.userRepo.users["alice"].ID
	assert.Equal(t, float64(env.profileRepo.profiles[userID].ID), body["candidateId"])
}
