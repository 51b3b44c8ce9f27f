package routes

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"interviewhub/demo"
)

// SetupDemoRoutes serves the demo page and runs the sample evaluation
// against the service through its public endpoint.
func SetupDemoRoutes(router gin.IRouter, client *demo.Client, title string) {
	router.GET("/", func(c *gin.Context) {
		renderPage(c, demo.Page(title, nil))
	})
	router.POST("/demo", func(c *gin.Context) {
		result := client.Evaluate(c.Request.Context())
		renderPage(c, demo.Page(title, result))
	})
}

func renderPage(c *gin.Context, page templ.Component) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}
