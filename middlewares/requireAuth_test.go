package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XidanAbds29/huehouse-api/initializers"
	"github.com/XidanAbds29/huehouse-api/models"
	"github.com/XidanAbds29/huehouse-api/utils"
)

func issueToken(t *testing.T, id uint, role string) string {
	t.Helper()
	initializers.Cfg.JWTSecret = "test-secret"
	user := models.User{Email: "jane@example.com", Role: role}
	user.ID = id
	token, err := utils.GenerateJWT(user)
	require.NoError(t, err)
	return token
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	echoUser := func(ctx *gin.Context) {
		if id, ok := CurrentUserID(ctx); ok {
			ctx.String(http.StatusOK, strconv.Itoa(int(id)))
			return
		}
		ctx.String(http.StatusOK, "guest")
	}

	router.GET("/private", RequireAuth(), echoUser)
	router.GET("/admin", RequireAuth(), RequireAdmin(), echoUser)
	router.GET("/open", OptionalAuth(), echoUser)
	return router
}

func perform(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	router := testRouter()
	token := issueToken(t, 7, models.RoleUser)

	rec := perform(router, "/private", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", rec.Body.String())

	rec = perform(router, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = perform(router, "/private", "bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	router := testRouter()

	rec := perform(router, "/admin", issueToken(t, 1, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = perform(router, "/admin", issueToken(t, 7, models.RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOptionalAuth(t *testing.T) {
	router := testRouter()

	rec := perform(router, "/open", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest", rec.Body.String())

	rec = perform(router, "/open", issueToken(t, 3, models.RoleUser))
	assert.Equal(t, "3", rec.Body.String())

	// A bad token is ignored, never rejected.
	rec = perform(router, "/open", "bogus")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest", rec.Body.String())
}
