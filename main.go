package main

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/maze-arena/api"
	gameapi "github.com/beka-birhanu/maze-arena/api/game"
	api_i "github.com/beka-birhanu/maze-arena/api/i"
	"github.com/beka-birhanu/maze-arena/api/identity"
	"github.com/beka-birhanu/maze-arena/config"
	logger "github.com/beka-birhanu/maze-arena/infrastruture/log"
	"github.com/beka-birhanu/maze-arena/infrastruture/mazestore"
	"github.com/beka-birhanu/maze-arena/infrastruture/repo"
	"github.com/beka-birhanu/maze-arena/infrastruture/sortedstorage"
	"github.com/beka-birhanu/maze-arena/infrastruture/token"
	"github.com/beka-birhanu/maze-arena/service"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	keyPrefix      = "maze-arena"
	leaderboardKey = keyPrefix + ":leaderboard"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       *repo.UserRepo
	attemptRepo    *repo.AttemptRepo
	gameStore      i.GameStore
	leaderboard    i.Leaderboard
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	arena          i.Arena
	authController api_i.Controller
	gameController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func mustLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context) {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}

	attemptRepo = repo.NewAttemptRepo(mongoClient, config.Envs.DBName, "attempts")
	if err := attemptRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating attempt indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initStores() {
	var err error
	ttl := time.Duration(config.Envs.GameTTLSeconds) * time.Second
	gameStore, err = mazestore.NewRedisStore(redisClient, ttl, keyPrefix)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game store: %v", err))
		os.Exit(1)
	}

	leaderboard, err = sortedstorage.NewRedisLeaderboard(redisClient, leaderboardKey)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game store and leaderboard initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer, mustLogger("AUTH", logger.ColorBlue))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

// newSource seeds a PCG generator from the operating system's entropy.
func newSource() *rand.Rand {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		appLogger.Warning(fmt.Sprintf("Reading random seed, falling back to clock: %v", err))
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>1))
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:])))
}

func initArena() {
	var err error
	arena, err = service.NewArena(service.ArenaConfig{
		Games:       gameStore,
		Attempts:    attemptRepo,
		Leaderboard: leaderboard,
		Users:       userRepo,
		Source:      newSource(),
		Logger:      mustLogger("ARENA", logger.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating arena: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Arena initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	gameController, err = gameapi.NewGameController(arena)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, gameController},
		AuthorizationMiddleware: identity.Authoriz(t),
		AllowedOrigins:          config.Envs.CORSOrigins,
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = mustLogger("APP", logger.ColorGreen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	initMongo(setupCtx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRepos(setupCtx)

	initRedis(setupCtx)
	defer redisClient.Close()

	initStores()
	initJWTTokenizer()
	initAuthService()
	initArena()
	initControllers()
	initRouter(jwtTokenizer)

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Running server: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Server stopped")
}
