package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/instashare/backend/internal/handlers"
	"github.com/instashare/backend/internal/middleware"
	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/relations"
	"github.com/instashare/backend/internal/repositories/memory"
	"github.com/instashare/backend/validators"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

// fakeUploader records uploads and returns a deterministic URL.
type fakeUploader struct {
	uploads int
}

func (u *fakeUploader) UploadImage(_ context.Context, src io.Reader, publicID string) (string, error) {
	if _, err := io.Copy(io.Discard, src); err != nil {
		return "", err
	}
	u.uploads++
	return "https://images.example/" + publicID, nil
}

// app wires the full handler stack against in-memory repositories.
type app struct {
	e        *echo.Echo
	users    *memory.UserRepo
	posts    *memory.PostRepo
	comments *memory.CommentRepo
	likes    *memory.LikeRepo
	tags     *memory.TagRepo
	profiles *memory.ProfileRepo
	uploader *fakeUploader
}

func newApp(t *testing.T) *app {
	t.Helper()

	a := &app{
		e:        echo.New(),
		users:    memory.NewUserRepo(),
		posts:    memory.NewPostRepo(),
		comments: memory.NewCommentRepo(),
		likes:    memory.NewLikeRepo(),
		tags:     memory.NewTagRepo(),
		profiles: memory.NewProfileRepo(),
		uploader: &fakeUploader{},
	}
	a.e.Validator = validators.NewValidator()

	maintainer := relations.NewMaintainer(a.users, a.posts, a.comments, a.likes, a.tags)

	authHandler := handlers.NewAuthHandler(a.users, a.profiles, testSecret)
	authHandler.RegisterAuthRoutes(a.e)

	postHandler := handlers.NewPostHandler(maintainer, a.posts, a.users, a.uploader)
	postHandler.RegisterPublicPostRoutes(a.e)

	commentHandler := handlers.NewCommentHandler(maintainer, a.comments, a.users)
	commentHandler.RegisterPublicCommentRoutes(a.e)

	api := a.e.Group("")
	api.Use(middleware.JWTAuthMiddleware(testSecret))

	handlers.NewUserHandler(a.users, a.profiles).RegisterUserRoutes(api)
	postHandler.RegisterPostRoutes(api)
	handlers.NewFollowHandler(maintainer).RegisterFollowRoutes(api)
	commentHandler.RegisterCommentRoutes(api)
	handlers.NewLikeHandler(maintainer).RegisterLikeRoutes(api)
	handlers.NewTagHandler(maintainer).RegisterTagRoutes(api)

	return a
}

// signup registers a user through the endpoint and returns the stored user.
func (a *app) signup(t *testing.T, userName, fullName string) *models.User {
	t.Helper()

	rec := a.postJSON(t, "/signup", "", map[string]string{
		"userName": userName,
		"fullName": fullName,
		"email":    userName + "@example.com",
		"password": "hunter22",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup %s: status = %d, body = %s", userName, rec.Code, rec.Body.String())
	}

	user, err := a.users.GetUserByUserName(context.Background(), userName)
	if err != nil {
		t.Fatalf("signup %s: user not stored: %v", userName, err)
	}
	return user
}

// tokenFor mints a credential for a stored user, bypassing the login endpoint.
func (a *app) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	claims := &models.JwtCustomClaims{
		Username: user.UserName,
		UserID:   user.ID.Hex(),
		Profile:  user.Profile.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func (a *app) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *app) postJSON(t *testing.T, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return a.do(req)
}

// postMultipart builds a multipart createPost request. An empty filename
// omits the image part entirely.
func (a *app) postMultipart(t *testing.T, path, token, title, filename string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if title != "" {
		if err := w.WriteField("title", title); err != nil {
			t.Fatalf("writing title field: %v", err)
		}
	}
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("creating file part: %v", err)
		}
		if _, err := part.Write([]byte("not a real image")); err != nil {
			t.Fatalf("writing file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return a.do(req)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return env
}
