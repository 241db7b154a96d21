package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"brightnest/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminRouter(actor *models.ActorIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor != nil {
		r.Use(func(c *gin.Context) {
			c.Set(actorContextKey, actor)
			c.Next()
		})
	}
	r.Use(AdminOnlyMiddleware())
	r.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminOnlyMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		actor    *models.ActorIdentity
		wantCode int
	}{
		{"admin passes", &models.ActorIdentity{UserID: "a-1", Role: models.RoleAdmin}, http.StatusOK},
		{"customer rejected", &models.ActorIdentity{UserID: "u-1", Role: models.RoleCustomer}, http.StatusForbidden},
		{"provider rejected", &models.ActorIdentity{UserID: "p-1", Role: models.RoleProvider}, http.StatusForbidden},
		{"no actor rejected", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			adminRouter(tt.actor).ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGetActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetActor(c))

	c.Set(actorContextKey, "not-an-actor")
	assert.Nil(t, GetActor(c))

	want := &models.ActorIdentity{UserID: "u-1", Role: models.RoleCustomer}
	c.Set(actorContextKey, want)
	assert.Equal(t, want, GetActor(c))
}
