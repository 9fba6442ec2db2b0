package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"covidhelp/internal/config"
	"covidhelp/internal/db"
	"covidhelp/internal/oauth"
	"covidhelp/internal/repository"
	"covidhelp/internal/session"
	"covidhelp/internal/usecase"
	"covidhelp/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := db.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Println("mongo disconnect: ", err)
		}
	}()

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal("failed to connect to Redis: ", err)
	}
	defer redisClient.Close()

	database := mongoClient.Database(cfg.MongoDatabase)
	users := repository.NewUserRepo(database)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to create indexes: ", err)
	}
	offers := repository.NewServiceOfferRepo(database)

	sessions := session.NewManager(session.NewRedisStore(redisClient), users, cfg.SessionSecret, cfg.SessionTTL)
	google := oauth.NewGoogle(oauth.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		CallbackURL:  cfg.GoogleCallbackURL,
	}, users)

	handler := web.NewHandler(
		usecase.NewAuthService(users),
		usecase.NewStatusService(users),
		usecase.NewOfferService(offers),
		usecase.NewListingService(users),
		sessions,
		google,
	)

	e, err := web.NewServer(handler)
	if err != nil {
		log.Fatal("failed to build server: ", err)
	}

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error: ", err)
		}
	}()
	log.Println("server started on ", cfg.ListenAddr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown: ", err)
	}
}
