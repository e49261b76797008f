package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"exhibition-catalog/internal/config"
	"exhibition-catalog/internal/controllers"
	"exhibition-catalog/internal/gemini"
	"exhibition-catalog/internal/repository"
)

type Deps struct {
	Categories *repository.Categories
	Exhibits   *repository.Exhibits
	Gemini     *gemini.Service
	Cfg        config.Config
	Log        *zap.Logger
}

func Register(d Deps) *gin.Engine {
	cat := controllers.CategoryController{
		Repo:     d.Categories,
		Exhibits: d.Exhibits,
		Cascade:  d.Cfg.CascadeDelete,
		Log:      d.Log,
	}
	ex := controllers.ExhibitController{Repo: d.Exhibits, Categories: d.Categories, Log: d.Log}
	viewer := controllers.NewViewerController(d.Categories, d.Exhibits, d.Log)
	desc := controllers.DescribeController{Gemini: d.Gemini}
	up := controllers.UploadController{}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	api := r.Group("/api/v1")

	api.GET("/categories", func(c *gin.Context) { cat.CreateOrList(c.Writer, c.Request) })
	api.POST("/categories", func(c *gin.Context) { cat.CreateOrList(c.Writer, c.Request) })
	api.PUT("/categories/:id", func(c *gin.Context) {
		c.Request.URL.Path = "/categories/" + c.Param("id")
		cat.Update(c.Writer, c.Request)
	})
	api.DELETE("/categories/:id", func(c *gin.Context) {
		c.Request.URL.Path = "/categories/" + c.Param("id")
		cat.Delete(c.Writer, c.Request)
	})

	api.GET("/exhibits", func(c *gin.Context) { ex.CreateOrList(c.Writer, c.Request) })
	api.POST("/exhibits", func(c *gin.Context) { ex.CreateOrList(c.Writer, c.Request) })
	api.PUT("/exhibits/:id", func(c *gin.Context) {
		c.Request.URL.Path = "/exhibits/" + c.Param("id")
		ex.Update(c.Writer, c.Request)
	})
	api.DELETE("/exhibits/:id", func(c *gin.Context) {
		c.Request.URL.Path = "/exhibits/" + c.Param("id")
		ex.Delete(c.Writer, c.Request)
	})

	// Exhibit viewer: list/detail navigation for one category.
	api.GET("/viewer/:categoryId", func(c *gin.Context) {
		c.Request.URL.Path = "/viewer/" + c.Param("categoryId")
		viewer.View(c.Writer, c.Request)
	})
	api.POST("/viewer/:categoryId/next", func(c *gin.Context) {
		c.Request.URL.Path = "/viewer/" + c.Param("categoryId") + "/next"
		viewer.Next(c.Writer, c.Request)
	})
	api.POST("/viewer/:categoryId/previous", func(c *gin.Context) {
		c.Request.URL.Path = "/viewer/" + c.Param("categoryId") + "/previous"
		viewer.Previous(c.Writer, c.Request)
	})
	api.POST("/viewer/:categoryId/select", func(c *gin.Context) {
		c.Request.URL.Path = "/viewer/" + c.Param("categoryId") + "/select"
		viewer.Select(c.Writer, c.Request)
	})
	api.POST("/viewer/:categoryId/exhibits", func(c *gin.Context) {
		c.Request.URL.Path = "/viewer/" + c.Param("categoryId") + "/exhibits"
		viewer.CreateExhibit(c.Writer, c.Request)
	})

	api.POST("/describe", func(c *gin.Context) { desc.Describe(c.Writer, c.Request) })
	api.POST("/uploads/image", func(c *gin.Context) { up.Image(c.Writer, c.Request) })

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
