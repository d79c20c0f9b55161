package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spacehub/docs"
	"spacehub/internal/cron"
	"spacehub/internal/database"
	"spacehub/internal/middleware"
	"spacehub/internal/modules/auth"
	"spacehub/internal/modules/booking"
	"spacehub/internal/modules/campaign"
	"spacehub/internal/modules/lead"
	"spacehub/internal/modules/media"
	"spacehub/internal/modules/payment"
	"spacehub/internal/modules/property"
	"spacehub/internal/modules/tenant"
	"spacehub/internal/modules/unit"
	"spacehub/internal/modules/widget"
	"spacehub/internal/pkg/cache"
	"spacehub/internal/pkg/events"
	jwtsvc "spacehub/internal/pkg/jwt"
	"spacehub/internal/pkg/logger"
	"spacehub/internal/pkg/storage"
	"spacehub/internal/repository"
)

// @title						SpaceHub API
// @version					1.0
// @description				Multi-tenant property and coworking management backend.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	_ = godotenv.Load()

	log := logger.New()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}

	// Optional infrastructure: the API runs without redis, kafka or S3, the
	// dependent features just degrade.
	var statsCache *cache.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		statsCache, err = cache.New(addr)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, stats cache disabled")
			statsCache = nil
		}
	}

	var publisher *events.Publisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		publisher = events.NewPublisher(broker, log)
		defer publisher.Close()
	}

	var objects media.ObjectStore
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		store, err := storage.New(context.Background(), bucket, os.Getenv("AWS_REGION"))
		if err != nil {
			log.WithError(err).Fatal("init object storage")
		}
		objects = store
	}

	var checkout payment.CheckoutProvider
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		checkout = payment.NewStripeProvider(key,
			os.Getenv("STRIPE_SUCCESS_URL"),
			os.Getenv("STRIPE_CANCEL_URL"))
	}

	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	widgetRepo := repository.NewWidgetRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, tenantRepo, j)
	authHandler := auth.NewHandler(authService)

	tenantService := tenant.NewService(tenantRepo, userRepo)
	tenantHandler := tenant.NewHandler(tenantService)

	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService)

	unitService := unit.NewService(unitRepo, propertyRepo, amenityRepo)
	unitHandler := unit.NewHandler(unitService)

	bookingService := booking.NewService(bookingRepo, unitRepo, publisher, statsCache, log)
	bookingHandler := booking.NewHandler(bookingService)

	leadService := lead.NewService(leadRepo, bookingService, publisher, log)
	leadHandler := lead.NewHandler(leadService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, checkout, log)
	paymentHandler := payment.NewHandler(paymentService)

	mediaService := media.NewService(mediaRepo, objects, propertyRepo, unitRepo, log)
	mediaHandler := media.NewHandler(mediaService)

	campaignService := campaign.NewService(campaignRepo, publisher)
	campaignHandler := campaign.NewHandler(campaignService)

	widgetService := widget.NewService(widgetRepo, leadRepo)
	widgetHandler := widget.NewHandler(widgetService)

	sweeper := cron.NewBookingSweeper(bookingRepo, log)
	if err := sweeper.Start(); err != nil {
		log.WithError(err).Fatal("start booking sweeper")
	}
	defer sweeper.Stop()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(log))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j), middleware.RequireTenant())

		adminOnly := protected.Group("/")
		adminOnly.Use(middleware.AdminOnly())

		managers := protected.Group("/")
		managers.Use(middleware.RequireRole("admin", "manager"))

		authHandler.RegisterRoutes(v1, protected)
		tenantHandler.RegisterRoutes(v1, adminOnly)
		widgetHandler.RegisterRoutes(v1, protected)

		bookingHandler.RegisterRoutes(protected)
		leadHandler.RegisterRoutes(protected)
		paymentHandler.RegisterRoutes(protected)

		propertyHandler.RegisterRoutes(managers)
		unitHandler.RegisterRoutes(managers)
		mediaHandler.RegisterRoutes(managers)
		campaignHandler.RegisterRoutes(managers)
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.WithField("addr", addr).Info("api listening")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
