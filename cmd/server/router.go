package main

import (
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"mockup-catalog-backend/docs"
	"mockup-catalog-backend/internal/handlers"
	"mockup-catalog-backend/internal/middleware"
)

type apis struct {
	products handlers.ProductAPI
	designs  handlers.DesignAPI
	export   handlers.ExportAPI
	settings handlers.FTPSettingsAPI
	pinger   handlers.Pinger
}

// setSwaggerHost points the Swagger docs at the public base URL.
func setSwaggerHost(baseURL string) {
	if baseURL == "" {
		return
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return
	}
	docs.SwaggerInfo.Host = u.Host
	if u.Scheme == "https" {
		docs.SwaggerInfo.Schemes = []string{"https", "http"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http", "https"}
	}
}

func newRouter(logger *zap.Logger, a apis) *gin.Engine {
	productsHandler := handlers.NewProductsHandler(a.products)
	designsHandler := handlers.NewDesignsHandler(a.designs)
	generatedHandler := handlers.NewGeneratedHandler(a.export)
	exportHandler := handlers.NewExportHandler(a.export)
	ftpHandler := handlers.NewFTPSettingsHandler(a.settings)

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthHandler(a.pinger))

	api := router.Group("/api/v1")

	// Mockup templates and blank products
	api.GET("/mockups/templates", productsHandler.ListTemplates)
	api.GET("/products", productsHandler.ListProducts)
	api.POST("/products", productsHandler.CreateProduct)
	api.GET("/products/sku-preview", productsHandler.SKUPreview)
	api.GET("/products/:id", productsHandler.GetProduct)
	api.PUT("/products/:id", productsHandler.UpdateProduct)
	api.DELETE("/products/:id", productsHandler.DeleteProduct)
	api.POST("/products/:id/design", productsHandler.PrepareDesign)
	api.GET("/products/:id/design-sku", productsHandler.DesignSKU)
	api.GET("/categories", productsHandler.Categories)

	// Generated products
	api.GET("/generated-products", generatedHandler.ListGenerated)
	api.GET("/generated-products/:id", generatedHandler.GetGenerated)
	api.DELETE("/generated-products/:id", generatedHandler.DeleteGenerated)

	// Design runs
	api.POST("/designs/runs", designsHandler.StartRun)
	api.GET("/designs/runs/:run_id", designsHandler.GetRun)
	api.DELETE("/designs/runs/:run_id", designsHandler.DiscardRun)
	api.POST("/designs/runs/:run_id/colors", designsHandler.RegenerateColor)
	api.POST("/designs/runs/:run_id/save", designsHandler.SaveRun)

	// Export
	api.GET("/export/products.csv", exportHandler.ExportCSV)
	api.GET("/export/products.xlsx", exportHandler.ExportXLSX)
	api.POST("/export/ftp", exportHandler.DeliverFTP)

	// FTP settings
	api.GET("/ftp-settings", ftpHandler.ListSettings)
	api.POST("/ftp-settings", ftpHandler.CreateSetting)
	api.POST("/ftp-settings/test", ftpHandler.TestConnection)
	api.PUT("/ftp-settings/:id", ftpHandler.UpdateSetting)
	api.DELETE("/ftp-settings/:id", ftpHandler.DeleteSetting)
	api.POST("/ftp-settings/:id/default", ftpHandler.SetDefault)

	return router
}
