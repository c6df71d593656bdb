package main

import (
	"context"
	"net/http"

	"restaurants-api/internal/config"
	"restaurants-api/internal/handler"
	"restaurants-api/internal/repository"
	"restaurants-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Restaurants API
// @version 1.0
// @description Read-only API over the restaurant rows written by the ingestion pipeline.
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	restaurantService := service.NewRestaurantService(repo)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/destinations/:id/restaurants", restaurantHandler.ListByDestination)
	r.GET("/destinations/:id/restaurants/:slug", restaurantHandler.GetBySlug)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
