package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/imraac/LMS-backend/internal/facades"
	"github.com/imraac/LMS-backend/internal/handlers"
	"github.com/imraac/LMS-backend/internal/jwt"
	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/middlewares"
	"github.com/imraac/LMS-backend/internal/mpesa"
	"github.com/imraac/LMS-backend/internal/repositories"
	"github.com/imraac/LMS-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title LMS-backend API
// @version 1.0.0
// @description Backend for the course and quiz platform with M-Pesa subscriptions
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		mpesaBaseURL, mpesaConsumerKey, mpesaConsumerSecret,
		mpesaShortcode, mpesaPasskey, mpesaCallbackURL, mpesaTokenTTLSecond,
		callbackToken, youtubeAPIKey,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		mpesaBaseURL, mpesaConsumerKey, mpesaConsumerSecret,
		mpesaShortcode, mpesaPasskey, mpesaCallbackURL, mpesaTokenTTLSecond,
		callbackToken, youtubeAPIKey,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, gateway, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	mpesaBaseURL, mpesaConsumerKey, mpesaConsumerSecret string,
	mpesaShortcode, mpesaPasskey, mpesaCallbackURL string, mpesaTokenTTLSecond int,
	callbackToken, youtubeAPIKey string,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// M-Pesa gateway config
	mpesaBaseURL = getEnv("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke")
	mpesaConsumerKey = getEnv("MPESA_CONSUMER_KEY", "")
	mpesaConsumerSecret = getEnv("MPESA_CONSUMER_SECRET", "")
	mpesaShortcode = getEnv("MPESA_SHORTCODE", "174379")
	mpesaPasskey = getEnv("MPESA_PASSKEY", "")
	mpesaCallbackURL = getEnv("MPESA_CALLBACK_URL", "")
	if mpesaTokenTTLSecond, err = strconv.Atoi(getEnv("MPESA_TOKEN_TTL_SECOND", "3000")); err != nil {
		return
	}
	callbackToken = getEnv("CALLBACK_TOKEN", "")

	// YouTube Data API config
	youtubeAPIKey = getEnv("YOUTUBE_API_KEY", "")

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "payments")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and gateway clients.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	mpesaBaseURL, mpesaConsumerKey, mpesaConsumerSecret string,
	mpesaShortcode, mpesaPasskey, mpesaCallbackURL string, mpesaTokenTTLSecond int,
	callbackToken, youtubeAPIKey string,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for payment status events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for broker %s, topic %s", kafkaBroker, kafkaTopic)
	} else {
		logger.Log.Info("Kafka broker not configured, payment events will not be published")
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// M-Pesa gateway client with Redis-backed token cache
	tokenCache := repositories.NewMpesaTokenCacheRepository(rdb, time.Duration(mpesaTokenTTLSecond)*time.Second)
	gateway := mpesa.NewClient(mpesa.Config{
		BaseURL:        mpesaBaseURL,
		ConsumerKey:    mpesaConsumerKey,
		ConsumerSecret: mpesaConsumerSecret,
		Shortcode:      mpesaShortcode,
		Passkey:        mpesaPasskey,
		CallbackURL:    mpesaCallbackURL,
	}, tokenCache)

	// YouTube metadata facade, optional
	var videoMetadata services.VideoMetadataLookup
	if youtubeAPIKey != "" {
		videoMetadata = facades.NewVideoMetadataFacade(youtubeAPIKey, "")
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	courseReadRepo := repositories.NewCourseReadRepository(db)
	courseWriteRepo := repositories.NewCourseWriteRepository(db)
	questionReadRepo := repositories.NewQuestionReadRepository(db)
	questionWriteRepo := repositories.NewQuestionWriteRepository(db)
	quizResultReadRepo := repositories.NewQuizResultReadRepository(db)
	quizResultWriteRepo := repositories.NewQuizResultWriteRepository(db)
	subscriptionWriteRepo := repositories.NewSubscriptionWriteRepository(db, middlewares.GetTxFromContext)
	paymentWriteRepo := repositories.NewPaymentWriteRepository(db, middlewares.GetTxFromContext)
	paymentReadRepo := repositories.NewPaymentReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	courseService := services.NewCourseService(courseReadRepo, courseWriteRepo, videoMetadata)
	questionService := services.NewQuestionService(questionReadRepo, questionWriteRepo)
	quizService := services.NewQuizService(quizResultWriteRepo, quizResultReadRepo)
	paymentService := services.NewPaymentService(
		userReadRepo, subscriptionWriteRepo, paymentWriteRepo, paymentReadRepo,
		gateway, kafkaWriter,
	)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	verifyTokenHandler := handlers.NewVerifyTokenHandler(authService, jwt)
	listUsersHandler := handlers.NewListUsersHandler(authService)
	listCoursesHandler := handlers.NewListCoursesHandler(courseService)
	createCourseHandler := handlers.NewCreateCourseHandler(courseService)
	deleteCourseByBodyHandler := handlers.NewDeleteCourseByBodyHandler(courseService)
	getCourseHandler := handlers.NewGetCourseHandler(courseService)
	updateCourseHandler := handlers.NewUpdateCourseHandler(courseService)
	deleteCourseHandler := handlers.NewDeleteCourseHandler(courseService)
	archiveCourseHandler := handlers.NewArchiveCourseHandler(courseService)
	unarchiveCourseHandler := handlers.NewUnarchiveCourseHandler(courseService)
	countCoursesHandler := handlers.NewCountCoursesHandler(courseService)
	createProCourseHandler := handlers.NewCreateProCourseHandler(courseService)
	listProCoursesHandler := handlers.NewListProCoursesHandler(courseService)
	createQuestionHandler := handlers.NewCreateQuestionHandler(questionService)
	listQuestionsHandler := handlers.NewListQuestionsHandler(questionService)
	saveQuizResultHandler := handlers.NewSaveQuizResultHandler(quizService)
	listQuizResultsHandler := handlers.NewListQuizResultsHandler(quizService)
	subscribeHandler := handlers.NewSubscribeHandler(paymentService)
	if callbackToken == "" {
		logger.Log.Warn("CALLBACK_TOKEN not set, /callback will reject every request")
	}
	callbackHandler := handlers.NewCallbackHandler(paymentService, callbackToken)
	paymentSummaryHandler := handlers.NewPaymentSummaryHandler(paymentService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public auth routes
	r.Post("/users", registerHandler)
	r.Post("/login", loginHandler)
	r.Post("/verify-token", verifyTokenHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwt)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/users", listUsersHandler)
	})

	// Course catalog
	r.Get("/courses", listCoursesHandler)
	r.Post("/courses", createCourseHandler)
	r.Delete("/courses", deleteCourseByBodyHandler)
	r.Get("/courses/count", countCoursesHandler)
	r.Get("/courses/pro", listProCoursesHandler)
	r.Post("/courses/pro", createProCourseHandler)
	r.Get("/courses/{id}", getCourseHandler)
	r.Put("/courses/{id}", updateCourseHandler)
	r.Delete("/courses/{id}", deleteCourseHandler)
	r.Put("/courses/{id}/archive", archiveCourseHandler)
	r.Put("/courses/{id}/unarchive", unarchiveCourseHandler)

	// Question bank
	r.Post("/questions/{category}", createQuestionHandler)
	r.Get("/questions/{category}", listQuestionsHandler)

	// Quiz results
	r.Post("/save-quiz-result", saveQuizResultHandler)
	r.Get("/get-all-quiz-results", listQuizResultsHandler)

	// Payments; /subscribe runs inside a transaction so the subscription,
	// the payment row, and the post-gateway status commit together
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/subscribe", subscribeHandler)
	})
	r.Post("/callback", callbackHandler)
	r.Get("/payment-summary", paymentSummaryHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
