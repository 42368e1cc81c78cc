package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/instashare/backend/internal/models"
)

func TestSignupCreatesUserWithBlankProfile(t *testing.T) {
	a := newApp(t)

	rec := a.postJSON(t, "/signup", "", map[string]string{
		"userName": "amara",
		"fullName": "Amara Okafor",
		"email":    "amara@example.com",
		"password": "hunter22",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("success = false: %s", env.Message)
	}
	if bytes.Contains(env.Data, []byte(`"password"`)) {
		t.Fatal("response data leaks the password field")
	}

	user, err := a.users.GetUserByUserName(context.Background(), "amara")
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if user.Password == "hunter22" {
		t.Fatal("password stored in plain text")
	}
	if user.Profile.IsZero() {
		t.Fatal("user has no linked profile")
	}
	if user.Image == "" {
		t.Fatal("no default avatar assigned")
	}

	profile, err := a.profiles.GetProfileByID(context.Background(), user.Profile)
	if err != nil {
		t.Fatalf("stored profile: %v", err)
	}
	if profile.User != user.ID {
		t.Fatalf("profile.User = %s, want %s", profile.User.Hex(), user.ID.Hex())
	}
}

func TestSignupDuplicateUserName(t *testing.T) {
	a := newApp(t)
	a.signup(t, "amara", "Amara Okafor")

	rec := a.postJSON(t, "/signup", "", map[string]string{
		"userName": "amara",
		"fullName": "A Different Amara",
		"email":    "other@example.com",
		"password": "hunter22",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Fatal("duplicate signup reported success")
	}
}

func TestSignupMissingFields(t *testing.T) {
	a := newApp(t)

	rec := a.postJSON(t, "/signup", "", map[string]string{
		"userName": "amara",
		"password": "hunter22",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLoginIssuesTokenAndCookie(t *testing.T) {
	a := newApp(t)
	a.signup(t, "amara", "Amara Okafor")

	rec := a.postJSON(t, "/login", "", map[string]string{
		"userName": "amara",
		"password": "hunter22",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)

	var data struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("no token in response body")
	}
	if data.User == nil || data.User.UserName != "amara" {
		t.Fatalf("unexpected user in response: %+v", data.User)
	}

	claims := &models.JwtCustomClaims{}
	_, err := jwt.ParseWithClaims(data.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("parsing issued token: %v", err)
	}
	if claims.Username != "amara" {
		t.Fatalf("claims.Username = %q", claims.Username)
	}
	if claims.UserID != data.User.ID.Hex() {
		t.Fatalf("claims.UserID = %q, want %q", claims.UserID, data.User.ID.Hex())
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatal("no token cookie set")
	}
	if !cookie.HttpOnly {
		t.Fatal("token cookie is not HttpOnly")
	}
	if cookie.Value != data.Token {
		t.Fatal("cookie token differs from body token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	a := newApp(t)
	a.signup(t, "amara", "Amara Okafor")

	rec := a.postJSON(t, "/login", "", map[string]string{
		"userName": "amara",
		"password": "wrong-password",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatal("wrong password reported success")
	}
	if len(env.Data) != 0 {
		t.Fatalf("data present on failed login: %s", env.Data)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			t.Fatal("token cookie set on failed login")
		}
	}
}

func TestLoginUnknownUser(t *testing.T) {
	a := newApp(t)

	rec := a.postJSON(t, "/login", "", map[string]string{
		"userName": "ghost",
		"password": "hunter22",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
