package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/book"
	bookHttp "github.com/paksr/MiniProject-Shoseki/internal/book/http"
	"github.com/paksr/MiniProject-Shoseki/internal/booking"
	bookingHttp "github.com/paksr/MiniProject-Shoseki/internal/booking/http"
	"github.com/paksr/MiniProject-Shoseki/internal/facility"
	facilityHttp "github.com/paksr/MiniProject-Shoseki/internal/facility/http"
	"github.com/paksr/MiniProject-Shoseki/internal/file"
	fileHttp "github.com/paksr/MiniProject-Shoseki/internal/file/http"
	"github.com/paksr/MiniProject-Shoseki/internal/loan"
	loanHttp "github.com/paksr/MiniProject-Shoseki/internal/loan/http"
	"github.com/paksr/MiniProject-Shoseki/internal/penalty"
	penaltyHttp "github.com/paksr/MiniProject-Shoseki/internal/penalty/http"
	"github.com/paksr/MiniProject-Shoseki/internal/reservation"
	reservationHttp "github.com/paksr/MiniProject-Shoseki/internal/reservation/http"
	"github.com/paksr/MiniProject-Shoseki/internal/user"
	userHttp "github.com/paksr/MiniProject-Shoseki/internal/user/http"
)

// Config collects everything the router needs to assemble the API.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService        user.Service
	FacilityService    facility.Service
	BookingService     booking.Service
	BookService        book.Service
	LoanService        loan.Service
	ReservationService reservation.Service
	PenaltyService     penalty.Service
	FileService        file.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: middleware (CORS,
// logging, recovery) plus the route registrations of every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	bookHandler := bookHttp.NewHandler(cfg.BookService)
	loanHandler := loanHttp.NewHandler(cfg.LoanService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	penaltyHandler := penaltyHttp.NewHandler(cfg.PenaltyService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		facilityHttp.RegisterRoutes(v1, facilityHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		bookHttp.RegisterRoutes(v1, bookHandler, authMiddleware, adminMiddleware)
		loanHttp.RegisterRoutes(v1, loanHandler, authMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware)
		penaltyHttp.RegisterRoutes(v1, penaltyHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
	}

	return r
}
