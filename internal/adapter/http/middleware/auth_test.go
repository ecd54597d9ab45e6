package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"
	mock_interfaces "casar_em_carneiros/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func protectedRouter(tokens interfaces.ITokenManager, roles ...entities.Role) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims, _ := ClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	r.GET("/secure", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := protectedRouter(mock_interfaces.NewMockITokenManager(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := protectedRouter(mock_interfaces.NewMockITokenManager(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		tokens.EXPECT().Parse("bad").Return(interfaces.SessionClaims{}, errors.New("invalid token"))
		r := protectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		tokens.EXPECT().Parse("good").Return(interfaces.SessionClaims{UserID: "u-1", Role: entities.RoleStaff}, nil)
		r := protectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"userId":"u-1"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("role allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		tokens.EXPECT().Parse("good").Return(interfaces.SessionClaims{UserID: "u-1", Role: entities.RoleAdmin}, nil)
		r := protectedRouter(tokens, entities.RoleStaff, entities.RoleAdmin)

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("role denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		tokens.EXPECT().Parse("good").Return(interfaces.SessionClaims{UserID: "u-1", Role: entities.RoleClient}, nil)
		r := protectedRouter(tokens, entities.RoleStaff, entities.RoleAdmin)

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
