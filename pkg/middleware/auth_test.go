package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asset-registry/internal/data/entity"
	"asset-registry/internal/data/repository"
	"asset-registry/pkg/token"
	"asset-registry/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) WithTx(tx pgx.Tx) repository.UserRepository { return s }
func (s *stubUserRepo) Create(ctx context.Context, u *entity.User) error {
	return nil
}
func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return nil, nil
}

type stubRevokedRepo struct {
	revoked map[uuid.UUID]bool
}

func (s *stubRevokedRepo) Revoke(ctx context.Context, t *entity.RevokedToken) error {
	s.revoked[t.JTI] = true
	return nil
}
func (s *stubRevokedRepo) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	return s.revoked[jti], nil
}
func (s *stubRevokedRepo) CleanExpired(ctx context.Context) error { return nil }

func authTestSetup(t *testing.T) (*token.Manager, *stubUserRepo, *stubRevokedRepo, http.Handler) {
	t.Helper()

	tokens := token.NewManager("test-secret", time.Hour)
	users := &stubUserRepo{}
	revoked := &stubRevokedRepo{revoked: make(map[uuid.UUID]bool)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			t.Errorf("identity missing from context")
		}
		role, _ := utils.GetRoleFromContext(r.Context())
		w.Header().Set("X-User", userID.String())
		w.Header().Set("X-Role", map[int]string{1: "admin"}[role])
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(tokens, users, revoked, zap.NewNop())(next)
	return tokens, users, revoked, handler
}

func doRequest(handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/aset/getdata", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	msg, _ := body["message"].(string)
	return msg
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, users, _, handler := authTestSetup(t)

	user := &entity.User{Role: entity.RoleAdministrator}
	user.ID = uuid.New()
	users.user = user

	issued, err := tokens.Issue(user.ID, int(user.Role))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := doRequest(handler, "Bearer "+issued.AccessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-User") != user.ID.String() {
		t.Fatalf("wrong user in context: %s", rec.Header().Get("X-User"))
	}
	if rec.Header().Get("X-Role") != "admin" {
		t.Fatalf("role not propagated")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, _, handler := authTestSetup(t)

	rec := doRequest(handler, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "authorization_token_not_found" {
		t.Fatalf("message = %q", msg)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, _, _, handler := authTestSetup(t)

	rec := doRequest(handler, "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "authorization_token_not_found" {
		t.Fatalf("message = %q", msg)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, _, _, handler := authTestSetup(t)

	rec := doRequest(handler, "Bearer not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "token_invalid" {
		t.Fatalf("message = %q", msg)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	_, users, _, handler := authTestSetup(t)

	user := &entity.User{Role: entity.RoleStandardUser}
	user.ID = uuid.New()
	users.user = user

	expired := token.NewManager("test-secret", -time.Minute)
	issued, err := expired.Issue(user.ID, int(user.Role))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := doRequest(handler, "Bearer "+issued.AccessToken)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "token_expired" {
		t.Fatalf("message = %q", msg)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	tokens, users, revoked, handler := authTestSetup(t)

	user := &entity.User{Role: entity.RoleStandardUser}
	user.ID = uuid.New()
	users.user = user

	issued, err := tokens.Issue(user.ID, int(user.Role))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	revoked.revoked[issued.JTI] = true

	rec := doRequest(handler, "Bearer "+issued.AccessToken)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "token_invalid" {
		t.Fatalf("message = %q", msg)
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	tokens, _, _, handler := authTestSetup(t)

	issued, err := tokens.Issue(uuid.New(), 2)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := doRequest(handler, "Bearer "+issued.AccessToken)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "user_not_found" {
		t.Fatalf("message = %q", msg)
	}
}
