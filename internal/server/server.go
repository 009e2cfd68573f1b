package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orghub/internal/config"
	"orghub/internal/handler"
	"orghub/internal/middleware"
	"orghub/internal/repository"
	"orghub/internal/service"

	_ "orghub/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	router *gin.Engine
	mongo  *mongo.Client
}

// New connects to MongoDB, ensures the uniqueness indexes, and wires the
// repositories, services and handlers into a router. The Mongo client is
// owned here and shared by reference for the life of the process.
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	if err := ensureIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	users := repository.NewUserRepository(db)
	orgs := repository.NewOrgRepository(db)

	userService := service.NewUserService(cfg, users)
	orgService := service.NewOrgService(cfg, orgs, users)

	router := setupRouter(log,
		handler.NewUserHandler(userService),
		handler.NewOrgHandler(orgService),
		handler.NewHealthHandler(mongoClient, log),
	)

	return &Server{
		cfg:    cfg,
		log:    log,
		router: router,
		mongo:  mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// ensureIndexes creates the unique indexes the engine relies on:
// users.email and organizations.name.
func ensureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("organizations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully and disconnects the store.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Address(),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return s.Close()
}

func setupRouter(log *zap.Logger, userH *handler.UserHandler, orgH *handler.OrgHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.SetTrustedProxies(nil)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/docs/index.html")
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", healthH.Check)

	users := r.Group("/users")
	{
		users.POST("", userH.Create)
		users.GET("", userH.List)
		users.GET("/:idOrEmail", userH.Get)
	}

	orgs := r.Group("/organizations")
	{
		orgs.POST("", orgH.Create)
		orgs.GET("", orgH.List)
		orgs.GET("/:orgId", orgH.Get)

		members := orgs.Group("/:orgId/members")
		members.POST("/:authorId", orgH.AddMember)
		members.PATCH("/:authorId", orgH.UpdateMember)
		members.DELETE("/:authorId", orgH.RemoveMember)
	}

	return r
}
