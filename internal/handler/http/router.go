package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/middleware"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Usecases bundles the application services the router exposes.
type Usecases struct {
	User           usecasecontract.IUserUseCase
	Instructor     usecasecontract.IInstructorUseCase
	Schedule       usecasecontract.IScheduleUseCase
	News           usecasecontract.INewsUseCase
	Event          usecasecontract.IEventUseCase
	Gallery        usecasecontract.IGalleryUseCase
	Registration   usecasecontract.IRegistrationUseCase
	ContactMessage usecasecontract.IContactMessageUseCase
	Stats          usecasecontract.IStatsUseCase
}

// Options tune the middleware chain. A zero rate disables that limiter.
type Options struct {
	AllowedOrigins      []string
	RateLimitRPS        float64
	ContactRateLimitRPS float64
	AccessLog           *slog.Logger
}

type Router struct {
	userHandler           *UserHandler
	instructorHandler     *InstructorHandler
	scheduleHandler       *ScheduleHandler
	newsHandler           *NewsHandler
	eventHandler          *EventHandler
	galleryHandler        *GalleryHandler
	registrationHandler   *RegistrationHandler
	contactMessageHandler *ContactMessageHandler
	statsHandler          *StatsHandler
	authenticator         middleware.Authenticator
	logger                usecasecontract.IAppLogger
	options               Options
}

func NewRouter(uc Usecases, logger usecasecontract.IAppLogger, options Options) *Router {
	return &Router{
		userHandler:           NewUserHandler(uc.User, logger),
		instructorHandler:     NewInstructorHandler(uc.Instructor, logger),
		scheduleHandler:       NewScheduleHandler(uc.Schedule, logger),
		newsHandler:           NewNewsHandler(uc.News, logger),
		eventHandler:          NewEventHandler(uc.Event, logger),
		galleryHandler:        NewGalleryHandler(uc.Gallery, logger),
		registrationHandler:   NewRegistrationHandler(uc.Registration, logger),
		contactMessageHandler: NewContactMessageHandler(uc.ContactMessage, logger),
		statsHandler:          NewStatsHandler(uc.Stats, logger),
		authenticator:         uc.User,
		logger:                logger,
		options:               options,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	if r.options.AccessLog != nil {
		router.Use(middleware.RequestLogger(r.options.AccessLog))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.options.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if r.options.RateLimitRPS > 0 {
		router.Use(middleware.RateLimiter(middleware.NewLimiter(r.options.RateLimitRPS)))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", Health)

	// Public form posts get a stricter budget.
	strict := func(c *gin.Context) { c.Next() }
	if r.options.ContactRateLimitRPS > 0 {
		strict = middleware.RateLimiter(middleware.NewLimiter(r.options.ContactRateLimitRPS))
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleWare(r.authenticator, r.logger))

	// Accounts
	api.POST("/register", strict, r.userHandler.Register)
	api.POST("/login_check", strict, r.userHandler.Login)
	api.GET("/profile", r.userHandler.GetProfile)
	api.PUT("/profile", r.userHandler.UpdateProfile)

	instructors := api.Group("/instructors")
	{
		instructors.GET("", r.instructorHandler.ListInstructors)
		instructors.GET("/:id", r.instructorHandler.GetInstructor)
		instructors.POST("", r.instructorHandler.CreateInstructor)
		instructors.PUT("/:id", r.instructorHandler.UpdateInstructor)
		instructors.DELETE("/:id", r.instructorHandler.DeleteInstructor)
	}

	schedules := api.Group("/schedules")
	{
		schedules.GET("", r.scheduleHandler.ListSchedules)
		schedules.GET("/:id", r.scheduleHandler.GetSchedule)
		schedules.POST("", r.scheduleHandler.CreateSchedule)
		schedules.PUT("/:id", r.scheduleHandler.UpdateSchedule)
		schedules.DELETE("/:id", r.scheduleHandler.DeleteSchedule)
	}

	news := api.Group("/news")
	{
		news.GET("", r.newsHandler.ListNews)
		news.GET("/:id", r.newsHandler.GetNews)
		news.POST("", r.newsHandler.CreateNews)
		news.PUT("/:id", r.newsHandler.UpdateNews)
		news.DELETE("/:id", r.newsHandler.DeleteNews)
	}

	events := api.Group("/events")
	{
		events.GET("", r.eventHandler.ListEvents)
		events.GET("/:id", r.eventHandler.GetEvent)
		events.POST("", r.eventHandler.CreateEvent)
		events.PUT("/:id", r.eventHandler.UpdateEvent)
		events.DELETE("/:id", r.eventHandler.DeleteEvent)
	}

	gallery := api.Group("/gallery")
	{
		gallery.GET("", r.galleryHandler.ListGalleryItems)
		gallery.GET("/:id", r.galleryHandler.GetGalleryItem)
		gallery.POST("", r.galleryHandler.CreateGalleryItem)
		gallery.PUT("/:id", r.galleryHandler.UpdateGalleryItem)
		gallery.DELETE("/:id", r.galleryHandler.DeleteGalleryItem)
	}

	registrations := api.Group("/registrations")
	{
		registrations.GET("", r.registrationHandler.ListRegistrations)
		registrations.GET("/export", r.registrationHandler.ExportRegistrations)
		registrations.GET("/:id", r.registrationHandler.GetRegistration)
		registrations.POST("", r.registrationHandler.CreateRegistration)
		registrations.PUT("/:id", r.registrationHandler.UpdateRegistration)
		registrations.DELETE("/:id", r.registrationHandler.DeleteRegistration)
	}

	messages := api.Group("/contact-messages")
	{
		messages.GET("", r.contactMessageHandler.ListContactMessages)
		messages.GET("/:id", r.contactMessageHandler.GetContactMessage)
		messages.POST("", strict, r.contactMessageHandler.CreateContactMessage)
		messages.PATCH("/:id/status", r.contactMessageHandler.UpdateContactMessageStatus)
		messages.DELETE("/:id", r.contactMessageHandler.DeleteContactMessage)
	}

	api.GET("/admin/stats", r.statsHandler.GetDashboardStats)
}
