// file: middleware/admin_required_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"campus-teams/middleware"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))
	return router
}

func TestAdminRequired_BlocksWithoutSession(t *testing.T) {
	router := newRouter()
	router.GET("/admin", middleware.AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAdminRequired_AllowsAdminSession(t *testing.T) {
	router := newRouter()

	router.GET("/become-admin", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("isAdmin", true)
		_ = session.Save()
		c.String(http.StatusOK, "set")
	})
	router.GET("/admin", middleware.AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	setReq, _ := http.NewRequest("GET", "/become-admin", nil)
	setW := httptest.NewRecorder()
	router.ServeHTTP(setW, setReq)

	req, _ := http.NewRequest("GET", "/admin", nil)
	for _, c := range setW.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestAdminRequired_BlocksNonBoolFlag(t *testing.T) {
	router := newRouter()

	router.GET("/poison", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("isAdmin", "yes")
		_ = session.Save()
		c.String(http.StatusOK, "set")
	})
	router.GET("/admin", middleware.AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	setReq, _ := http.NewRequest("GET", "/poison", nil)
	setW := httptest.NewRecorder()
	router.ServeHTTP(setW, setReq)

	req, _ := http.NewRequest("GET", "/admin", nil)
	for _, c := range setW.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
