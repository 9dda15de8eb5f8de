package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wb-go/wbf/logger"

	"github.com/paksr/MiniProject-Shoseki/internal/api"
	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/book"
	"github.com/paksr/MiniProject-Shoseki/internal/booking"
	"github.com/paksr/MiniProject-Shoseki/internal/config"
	"github.com/paksr/MiniProject-Shoseki/internal/facility"
	"github.com/paksr/MiniProject-Shoseki/internal/file"
	"github.com/paksr/MiniProject-Shoseki/internal/loan"
	"github.com/paksr/MiniProject-Shoseki/internal/notification"
	"github.com/paksr/MiniProject-Shoseki/internal/penalty"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/clock"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/storage"
	"github.com/paksr/MiniProject-Shoseki/internal/reservation"
	"github.com/paksr/MiniProject-Shoseki/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router  *gin.Engine
	Sweeper *loan.Sweeper
}

// NewContainer wires every module together. Modules are constructed
// bottom-up: repositories, then services, then the router.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, log logger.Logger) (*Container, error) {
	clk := clock.NewSystem()
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	notifier, err := notification.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, log)
	if err != nil {
		return nil, fmt.Errorf("init telegram notifier: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher, clk)

	// Facility catalog
	facilityRepo := facility.NewPgxRepository(pool)
	facilityService := facility.NewService(facilityRepo)

	// Facility booking
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(
		bookingRepo, facilityService, clk, notifier, log,
		cfg.SlotGranularity, cfg.ClosedWeekdays,
	)

	// Book catalog
	bookRepo := book.NewPgxRepository(pool)
	bookService := book.NewService(bookRepo)

	// Penalties
	penaltyRepo := penalty.NewPgxRepository(pool)
	penaltyService := penalty.NewService(penaltyRepo, notifier, log, cfg.FinePerDay)

	// Loans + overdue sweeper
	loanRepo := loan.NewPgxRepository(pool)
	loanService := loan.NewService(loanRepo, penaltyService, clk, log, cfg.LoanPeriodDays)
	sweeper := loan.NewSweeper(loanService, cfg.SweepInterval, log)

	// Reservations
	reservationRepo := reservation.NewPgxRepository(pool)
	reservationService := reservation.NewService(reservationRepo, bookService, log)

	// File uploads
	fileRepo := file.NewRepository(pool)
	fileService := file.NewService(fileRepo, store, clk)

	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,

		UserService:        userService,
		FacilityService:    facilityService,
		BookingService:     bookingService,
		BookService:        bookService,
		LoanService:        loanService,
		ReservationService: reservationService,
		PenaltyService:     penaltyService,
		FileService:        fileService,

		JWTManager: jwtManager,
	})

	return &Container{
		Router:  router,
		Sweeper: sweeper,
	}, nil
}
