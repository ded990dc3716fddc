package main

import (
	"context"
	"log"
	"net/http"

	"food-ordering/config"
	"food-ordering/controllers"
	"food-ordering/middleware"
	"food-ordering/repository"
	"food-ordering/routes"
	"food-ordering/utils"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)
	utils.TokenTTL = cfg.JWTTTL

	emailService := utils.NewEmailService(cfg.EmailProvider, cfg.PostmarkAPIToken, cfg.SendGridAPIKey, cfg.EmailSender)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	var restaurantRepo repository.RestaurantRepository = repository.NewRestaurantRepository(db)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable at %s, serving without cache: %v", cfg.RedisAddr, err)
		} else {
			log.Printf("Caching restaurants in Redis at %s", cfg.RedisAddr)
			restaurantRepo = repository.NewCachedRestaurantRepository(restaurantRepo, rdb, cfg.CacheTTL)
		}
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Printf("Warning: %v", err)
	}
	orderRepo := repository.NewOrderRepository(db)

	var publisher utils.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := utils.NewKafkaWriter(cfg.KafkaBroker, cfg.OrderTopic)
		defer writer.Close()
		publisher = utils.NewKafkaPublisher(writer)
		log.Printf("Publishing order events to %s on %s", cfg.OrderTopic, cfg.KafkaBroker)
	}

	// Initialize controllers
	restaurantController := controllers.NewRestaurantController(restaurantRepo)
	userController := controllers.NewUserController(userRepo)
	orderController := controllers.NewOrderController(orderRepo, userRepo, emailService, publisher, cfg.FrontendURL)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	routes.RegisterRoutes(router, restaurantController, userController, orderController)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(router)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
