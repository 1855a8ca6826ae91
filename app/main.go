package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"rabbitry/config"
	"rabbitry/services/farm/delivery"
	"rabbitry/services/farm/repository"
	"rabbitry/services/farm/usecase"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool()
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}

	if err := config.InitEmailer(); err != nil {
		log.Warnf("Emailer disabled: %v", err)
	}

	timeout := 10 * time.Second

	authRepo := repository.NewAuthRepository(db)
	authUC := usecase.NewAuthUseCase(authRepo, timeout)

	userRepo := repository.NewUserRepository(pool)
	userUC := usecase.NewUserUseCase(userRepo, timeout)

	roleRepo := repository.NewRoleRepository(db)
	roleUC := usecase.NewRoleUseCase(roleRepo, timeout)

	farmRepo := repository.NewFarmRepository(db)
	farmUC := usecase.NewFarmUseCase(farmRepo, timeout)

	rabbitRepo := repository.NewRabbitRepository(db)
	rabbitUC := usecase.NewRabbitUseCase(rabbitRepo, timeout)

	breedingRepo := repository.NewBreedingRepository(db)
	breedingUC := usecase.NewBreedingUseCase(breedingRepo, config.CullingMailer{}, timeout)

	kitRepo := repository.NewKitRepository(db)
	kitUC := usecase.NewKitUseCase(kitRepo, timeout)

	delivery.NewAuthDelivery(app, authUC)
	delivery.NewUserDelivery(app, userUC)
	delivery.NewRoleDelivery(app, roleUC)
	delivery.NewFarmDelivery(app, farmUC)
	delivery.NewRabbitDelivery(app, rabbitUC)
	delivery.NewBreedingDelivery(app, breedingUC)
	delivery.NewKitDelivery(app, kitUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", getHTTPPort())
		if err := app.Listen(":" + getHTTPPort()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}

func getHTTPPort() string {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		return port
	}
	return "8080"
}
