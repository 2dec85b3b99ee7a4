// @title           TeleGuard Inspect API
// @version         1.0
// @description     Checklist-driven inspection tracker for telecom field installations. Projects live in memory only and are lost on restart.

// @host      localhost:9000

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "backend/docs"
	"backend/handlers"
	"backend/services"
	"backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://localhost:9000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization",
		"Cache-Control", "Referer", "User-Agent",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Type", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	// .env carries GEMINI_API_KEY and PORT; optional in production
	// where the environment is set by the process manager.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	store := storage.InitStore()

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	// Projects
	r.POST("/api/project_create", handlers.CreateProject(store, services.GenerateChecklist))
	r.GET("/api/projects", handlers.FetchAllProjects(store))
	r.GET("/api/project_fetch/:id", handlers.FetchProject(store))
	r.GET("/api/project_summary/:id", handlers.GetProjectSummary(store))

	// Checklist mutations
	r.PUT("/api/item_status/:project_id/:section_id/:item_id", handlers.UpdateItemStatus(store))
	r.PUT("/api/item_field/:project_id/:section_id/:item_id", handlers.UpdateItemField(store))
	r.POST("/api/item_create/:project_id/:section_id", handlers.AddItem(store))
	r.DELETE("/api/item_delete/:project_id/:section_id/:item_id", handlers.DeleteItem(store))
	r.POST("/api/section_create/:project_id", handlers.AddSection(store))
	r.DELETE("/api/section_delete/:project_id/:section_id", handlers.DeleteSection(store))
	r.PUT("/api/section_rename/:project_id/:section_id", handlers.RenameSection(store))

	// Images
	r.POST("/api/item_image/:project_id/:section_id/:item_id", handlers.AttachItemImage(store))

	// Exports
	r.GET("/api/report_pdf/:id", handlers.GenerateInspectionReport(store))
	r.GET("/api/export_csv/:id", handlers.ExportChecklistCSV(store))
	r.GET("/api/export_excel/:id", handlers.ExportChecklistExcel(store))

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil || portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT environment variable: %s", port)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("TeleGuard Inspect API listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	// In-memory state dies with the process; nothing to flush.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
