package property

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the property routes on an authenticated
// group. Mutating routes and the form-context routes additionally
// require the agent role.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, agentOnly gin.HandlerFunc) {
	props := r.Group("/properties")
	{
		props.GET("/list", h.List)
		props.GET("/create", agentOnly, h.NewForm)
		props.POST("", agentOnly, h.Create)
		props.GET("/:id", h.Get)
		props.GET("/:id/edit", agentOnly, h.EditForm)
		props.PUT("/:id", agentOnly, h.Update)
		props.DELETE("/:id", agentOnly, h.Delete)
	}
}
