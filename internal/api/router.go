package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the engine and the /api route table.
//
// CORS is wide open: the frontends this serves run on arbitrary dev hosts
// (vite on 5173, CRA on 3000, whatever else), and the original allowed any
// origin. AllowAllOrigins rules out credentialed requests, which nothing
// here uses; the bearer token travels in a plain Authorization header.
func NewRouter(auth *AuthHandler, teams *TeamHandler, tasks *TaskHandler, messages *MessageHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TaskFlow API is running"})
	})

	api := r.Group("/api")
	{
		// Health is static: load balancers poll it, so it must not touch
		// storage.
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/auth/register", auth.Register)
		api.POST("/auth/login", auth.Login)

		api.POST("/teams", teams.Create)
		api.GET("/teams", teams.List)
		api.POST("/teams/:team_id/members/:user_email", teams.AddMember)

		api.POST("/tasks", tasks.Create)
		api.GET("/tasks", tasks.List)
		api.PATCH("/tasks/:task_id", tasks.UpdateStatus)
		api.POST("/tasks/:task_id/updates", tasks.AddUpdate)

		api.POST("/messages", messages.Create)
		api.GET("/messages", messages.List)
	}

	return r
}
