package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/horizonhospital/hospital-system/docs"
	"github.com/horizonhospital/hospital-system/internal/api/handler"
	"github.com/horizonhospital/hospital-system/internal/api/middleware"
	"github.com/horizonhospital/hospital-system/internal/core/domain"
	"github.com/horizonhospital/hospital-system/internal/core/ports"
	"github.com/horizonhospital/hospital-system/internal/core/service"
	mongodb "github.com/horizonhospital/hospital-system/internal/infrastructure/db/mongo"
	redisdb "github.com/horizonhospital/hospital-system/internal/infrastructure/db/redis"
)

// RouterConfig carries the knobs the HTTP layer needs beyond its backing
// stores.
type RouterConfig struct {
	SessionTTL time.Duration
	BcryptCost int
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is the producer side of the dispatcher started in main;
// the audit service backs the admin read view over the same trail.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, auditView ports.AuditService, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hospital"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	departmentRepo := mongodb.NewDepartmentRepository(db)
	doctorRepo := mongodb.NewDoctorProfileRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	recordRepo := mongodb.NewMedicalRecordRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, sessionStore, audit, cfg.BcryptCost)
	userService := service.NewUserService(accountRepo, cfg.BcryptCost)
	patientService := service.NewPatientService(patientRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	doctorService := service.NewDoctorProfileService(doctorRepo, departmentRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo)
	recordService := service.NewMedicalRecordService(recordRepo, patientRepo)
	paymentService := service.NewPaymentService(paymentRepo, patientRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	patientHandler := handler.NewPatientHandler(patientService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	doctorHandler := handler.NewDoctorProfileHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	recordHandler := handler.NewMedicalRecordHandler(recordService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reportHandler := handler.NewReportHandler(patientService, appointmentService, paymentService)
	auditHandler := handler.NewAuditHandler(auditView)

	authn := middleware.Auth(authService)
	audited := middleware.Audit(audit)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated, any role ---
	session := e.Group("", authn)
	session.POST("/auth/logout", authHandler.Logout)
	session.GET("/auth/me", authHandler.Me)

	// --- Role-gated resource groups. Auth always runs before RBAC. ---
	staff := []string{domain.RoleStaff, domain.RoleAdmin}
	anyRole := []string{domain.RolePatient, domain.RoleStaff, domain.RoleAdmin}

	patients := e.Group("/patients", authn, middleware.RBAC(staff...), audited)
	patients.GET("", patientHandler.List)
	patients.GET("/:id", patientHandler.Get)
	patients.POST("", patientHandler.Create)
	patients.PUT("/:id", patientHandler.Update)
	patients.DELETE("/:id", patientHandler.Delete)

	appointments := e.Group("/appointments", authn, middleware.RBAC(anyRole...), audited)
	appointments.GET("", appointmentHandler.List)
	appointments.GET("/:id", appointmentHandler.Get)
	appointments.POST("", appointmentHandler.Create)
	appointments.PUT("/:id", appointmentHandler.Update)
	appointments.DELETE("/:id", appointmentHandler.Delete)

	doctors := e.Group("/doctor-profiles", authn, middleware.RBAC(staff...), audited)
	doctors.GET("", doctorHandler.List)
	doctors.GET("/:id", doctorHandler.Get)
	doctors.POST("", doctorHandler.Create)
	doctors.PUT("/:id", doctorHandler.Update)
	doctors.DELETE("/:id", doctorHandler.Delete)

	records := e.Group("/medical-records", authn, middleware.RBAC(staff...), audited)
	records.GET("", recordHandler.List)
	records.GET("/:id", recordHandler.Get)
	records.POST("", recordHandler.Create)
	records.PUT("/:id", recordHandler.Update)
	records.DELETE("/:id", recordHandler.Delete)

	// Department listing is open to staff; mutations are admin-only.
	departments := e.Group("/departments", authn)
	departments.GET("", departmentHandler.List, middleware.RBAC(staff...))
	departments.GET("/:id", departmentHandler.Get, middleware.RBAC(staff...))
	admin := middleware.RBAC(domain.RoleAdmin)
	departments.POST("", departmentHandler.Create, admin, audited)
	departments.PUT("/:id", departmentHandler.Update, admin, audited)
	departments.DELETE("/:id", departmentHandler.Delete, admin, audited)

	payments := e.Group("/payments", authn, middleware.RBAC(domain.RoleAdmin), audited)
	payments.GET("", paymentHandler.List)
	payments.GET("/:id", paymentHandler.Get)
	payments.POST("", paymentHandler.Create)
	payments.PUT("/:id", paymentHandler.Update)
	payments.DELETE("/:id", paymentHandler.Delete)

	users := e.Group("/users", authn, middleware.RBAC(domain.RoleAdmin), audited)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	e.GET("/reports", reportHandler.Summary, authn, middleware.RBAC(staff...))
	e.GET("/audit", auditHandler.List, authn, middleware.RBAC(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
