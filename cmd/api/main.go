package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"tourism/internal/config"
	"tourism/internal/database"
	"tourism/internal/middleware"
	"tourism/internal/modules/assignment"
	"tourism/internal/modules/audit"
	"tourism/internal/modules/auth"
	"tourism/internal/modules/booking"
	"tourism/internal/modules/catalog"
	"tourism/internal/modules/payment"
	"tourism/internal/modules/review"
	jwtsvc "tourism/internal/pkg/jwt"
	"tourism/internal/repository"
)

func main() {
	cfg := config.MustLoad()
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	languageRepo := repository.NewLanguageRepository(db)
	entTypeRepo := repository.NewEntertainmentTypeRepository(db)
	placeCategoryRepo := repository.NewPlaceCategoryRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	auditService := audit.NewService(auditRepo, log.Printf)
	auditHandler := audit.NewHandler(auditService)

	authService := auth.NewService(userRepo, j, auditService)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(placeRepo, driverRepo, companyRepo, languageRepo, entTypeRepo, placeCategoryRepo, auditService)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, placeRepo, userRepo, driverRepo, assignmentRepo, auditService)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(txRepo, paymentRepo, bookingRepo, auditService, log.Printf)
	paymentHandler := payment.NewHandler(paymentService)

	assignmentService := assignment.NewService(assignmentRepo, driverRepo, placeRepo, auditService)
	assignmentHandler := assignment.NewHandler(assignmentService)

	reviewService := review.NewService(reviewRepo, placeRepo, auditService)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)

		// authenticated
		protected := v1.Group("")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
		}

		// admin
		admin := v1.Group("")
		admin.Use(middleware.RequireAuth(j), middleware.AdminOnly())
		{
			catalogHandler.RegisterAdminRoutes(admin)
			assignmentHandler.RegisterRoutes(admin)
			auditHandler.RegisterRoutes(admin)
		}
	}

	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal(err)
	}
}
