// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "estate_backend/internal/feature/auth/transport/handler"
	prophandler "estate_backend/internal/feature/property/transport/handler"
	platformhandler "estate_backend/internal/platform/http/handler"
	jwtmw "estate_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine. Mutating listing routes and /me sit behind
// the auth gate; signup, login and the read-only listing routes do not.
func NewRouter(authH *authhandler.AuthHandler, propH *prophandler.PropertyHandler,
	verifier *jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")
	authRequired := jwtmw.AuthRequired(verifier)

	users := api.Group("/users")
	users.POST("/signup", authH.Signup)
	users.POST("/login", authH.Login)

	me := users.Group("")
	me.Use(authRequired)
	{
		me.GET("/me", authH.Me)
	}

	props := api.Group("/properties")
	// Browsing listings is intentionally open.
	props.GET("", propH.List)
	props.GET("/:propertyId", propH.Get)

	mutating := props.Group("")
	mutating.Use(authRequired)
	{
		mutating.POST("", propH.Create)
		mutating.PUT("/:propertyId", propH.Update)
		mutating.DELETE("/:propertyId", propH.Delete)
	}

	return r
}
