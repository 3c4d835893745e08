package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shiftwise/staff-scheduler/internal/audit"
	"github.com/shiftwise/staff-scheduler/internal/config"
	"github.com/shiftwise/staff-scheduler/internal/handlers"
	infraRepo "github.com/shiftwise/staff-scheduler/internal/infra/repository"
	"github.com/shiftwise/staff-scheduler/internal/middleware"
	ucSchedule "github.com/shiftwise/staff-scheduler/internal/usecase/schedule"
	ucStaff "github.com/shiftwise/staff-scheduler/internal/usecase/staff"
)

// Deps carries the optional infrastructure collaborators; nil fields
// degrade gracefully (no cache, no image uploads).
type Deps struct {
	HoursCache ucSchedule.HoursCache
	Images     ucStaff.ImageStore
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	staffRepo := infraRepo.NewStaffGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	submitScheduleUC := ucSchedule.NewSubmitSchedule(staffRepo, auditDispatcher)
	listSchedulesUC := ucSchedule.NewListSchedules(staffRepo)
	listBookingsUC := ucSchedule.NewListBookings(staffRepo)
	getStoreHoursUC := ucSchedule.NewGetStoreHours(staffRepo, deps.HoursCache)
	invalidateScheduleUC := ucSchedule.NewInvalidateSchedule(staffRepo, auditDispatcher)

	getProfileUC := ucStaff.NewGetProfile(staffRepo)
	updateProfileUC := ucStaff.NewUpdateProfile(staffRepo, deps.Images, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(getProfileUC, updateProfileUC)
	scheduleHandler := handlers.NewScheduleHandler(
		submitScheduleUC,
		listSchedulesUC,
		invalidateScheduleUC,
	)
	bookingHandler := handlers.NewBookingHandler(listBookingsUC)
	storeHoursHandler := handlers.NewStoreHoursHandler(getStoreHoursUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/staff")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/profile", profileHandler.Show)
			secured.PUT("/profile", profileHandler.Update)

			secured.POST("/schedule", scheduleHandler.Create)
			secured.GET("/schedule", scheduleHandler.List)
			secured.PATCH("/schedule/:id/invalidate", scheduleHandler.Invalidate)

			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/store-hours", storeHoursHandler.Show)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
