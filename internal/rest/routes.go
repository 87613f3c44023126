package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes wires all public routes. Registering the comment
// submission for POST only makes the router answer read requests on it
// with 405, which is the intended protocol-error response.
func (h *BlogHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", h.Health)
	e.GET("/feed", h.Feed)
	e.GET("/sitemap.xml", h.Sitemap)
	e.GET("/search", h.Search)

	e.GET("/", h.PostList)
	e.GET("/tag/:slug", h.PostList)

	e.POST("/posts/:id/comment", h.PostComment)
	e.GET("/posts/:id/share", h.PostShare)
	e.POST("/posts/:id/share", h.PostShare)

	e.GET("/:year/:month/:day/:slug", h.PostDetail)

	return e
}
