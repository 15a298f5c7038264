package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/lostblog/blog-backend/internal/repository"
	mysqlRepo "github.com/lostblog/blog-backend/internal/repository/mysql"
	"github.com/lostblog/blog-backend/internal/repository/mysql/model"
	myRedisCache "github.com/lostblog/blog-backend/internal/repository/redis"
	"github.com/lostblog/blog-backend/internal/workers"

	"github.com/lostblog/blog-backend/domain"
	"github.com/lostblog/blog-backend/internal/rest"
	"github.com/lostblog/blog-backend/internal/rest/middleware"
	"github.com/lostblog/blog-backend/internal/usecase/comment"
	"github.com/lostblog/blog-backend/internal/usecase/like"
)

const (
	defaultTimeout          = 30
	defaultAddress          = ":9090"
	defaultCacheDB          = 0
	defaultBloomBitSize     = 10000000
	defaultBloomSyncMinutes = 5
	dbMaxRetry              = 10
	dbRetryIntervalSec      = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// comments and likes are owned by this service; posts and users belong
	// to their own subsystems and are read-only here
	if err := db.AutoMigrate(&model.Comment{}, &model.Like{}); err != nil {
		log.Fatal("failed to migrate comment/like tables: ", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	maxNestingStr := os.Getenv("COMMENT_MAX_NESTING_LEVEL")
	maxNesting, err := strconv.Atoi(maxNestingStr)
	if err != nil {
		log.Println("failed to parse max nesting level, using default")
		maxNesting = domain.DefaultMaxNestingLevel
	}
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db, maxNesting)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	postDBRepo := mysqlRepo.NewPostRepository(db)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bloomSyncStr := os.Getenv("BLOOM_SYNC_MINUTES")
	bloomSync, err := strconv.Atoi(bloomSyncStr)
	if err != nil || bloomSync <= 0 {
		bloomSync = defaultBloomSyncMinutes
	}
	bloom_syncer := workers.NewSyncBloomWorker(postDBRepo, bloomRepo, time.Duration(bloomSync)*time.Minute)
	go bloom_syncer.Start(ctx)

	postGateway := repository.NewPostGateway(postDBRepo, bloomRepo, bloom_syncer)

	// Build service Layer
	jwtSecret := os.Getenv("JWT_SECRET")
	commentSvc := comment.NewService(commentRepo, likeRepo, userRepo, postGateway)
	likeSvc := like.NewService(likeRepo, commentRepo, postGateway)
	commentHandler := rest.NewCommentHandler(commentSvc)
	likeHandler := rest.NewLikeHandler(likeSvc)

	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtSecret)

	// Prepare bloom filter
	if err := postGateway.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	api := route.Group("/api")

	public := api.Group("/")
	public.Use(optionalAuth)
	{
		public.GET("/posts/:id/comments", commentHandler.FetchCommentsByPost)
		public.GET("/comments/:id/replies", commentHandler.FetchReplies)
		public.GET("/posts/:id/likes", likeHandler.PostLikeInfo)
		public.GET("/comments/:id/likes", likeHandler.CommentLikeInfo)
	}

	authorized := api.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/posts/:id/comments", commentHandler.CreateComment)
		authorized.POST("/comments/:id/replies", commentHandler.CreateReply)
		authorized.PUT("/comments/:id", commentHandler.UpdateComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)
		authorized.GET("/comments/my", commentHandler.FetchMyComments)

		authorized.POST("/posts/:id/likes", likeHandler.LikePost)
		authorized.DELETE("/posts/:id/likes", likeHandler.UnlikePost)
		authorized.POST("/comments/:id/likes", likeHandler.LikeComment)
		authorized.DELETE("/comments/:id/likes", likeHandler.UnlikeComment)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
