package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventdash/internal/api/handler"
	"eventdash/internal/api/middleware"
	"eventdash/internal/config"
	"eventdash/internal/gateway"
	"eventdash/internal/service"
	"eventdash/internal/session"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	sessions *session.Manager
}

func NewServer(conf *config.AppConfig, backend *gateway.Client, sessions *session.Manager) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.LoadHTMLGlob("web/templates/*.tmpl")

	s := &Server{
		Config:   conf,
		Router:   engine,
		sessions: sessions,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(backend)
	eventHandler := s.initEventHandler(backend)
	venueHandler := s.initVenueHandler(backend)
	orgHandler := s.initOrganizationHandler(backend)
	registrationHandler := s.initRegistrationHandler(backend)
	profileHandler := s.initProfileHandler(backend)
	s.MountHandlers(authHandler, eventHandler, venueHandler, orgHandler, registrationHandler, profileHandler)

	return s
}

func (s *Server) initAuthHandler(backend *gateway.Client) *handler.AuthHandler {
	svc := service.NewAuthService(backend)
	return handler.NewAuthHandler(svc, s.sessions)
}

func (s *Server) initEventHandler(backend *gateway.Client) *handler.EventHandler {
	svc := service.NewEventService(backend)
	venues := service.NewVenueService(backend)
	orgs := service.NewOrganizationService(backend)
	attendees := service.NewAttendeeService(backend)
	return handler.NewEventHandler(svc, venues, orgs, attendees)
}

func (s *Server) initVenueHandler(backend *gateway.Client) *handler.VenueHandler {
	svc := service.NewVenueService(backend)
	return handler.NewVenueHandler(svc)
}

func (s *Server) initOrganizationHandler(backend *gateway.Client) *handler.OrganizationHandler {
	svc := service.NewOrganizationService(backend)
	return handler.NewOrganizationHandler(svc)
}

func (s *Server) initRegistrationHandler(backend *gateway.Client) *handler.RegistrationHandler {
	svc := service.NewAttendeeService(backend)
	events := service.NewEventService(backend)
	return handler.NewRegistrationHandler(svc, events)
}

func (s *Server) initProfileHandler(backend *gateway.Client) *handler.ProfileHandler {
	svc := service.NewAuthService(backend)
	return handler.NewProfileHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
}

func (s *Server) MountHandlers(
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	venueHandler *handler.VenueHandler,
	orgHandler *handler.OrganizationHandler,
	registrationHandler *handler.RegistrationHandler,
	profileHandler *handler.ProfileHandler,
) {
	s.Router.GET("/login", authHandler.HandleShowLogin)
	s.Router.POST("/login", authHandler.HandleLogin)
	s.Router.GET("/register", authHandler.HandleShowRegister)
	s.Router.POST("/register", authHandler.HandleRegister)
	s.Router.POST("/logout", authHandler.HandleLogout)

	auth := middleware.NewAuthenticator(s.sessions)
	dashboard := s.Router.Group("/dashboard", auth.RequireSession())
	{
		dashboard.GET("", eventHandler.HandleDashboard)
		dashboard.GET("/events", eventHandler.HandleListEvents)
		dashboard.GET("/event-new", eventHandler.HandleShowNewEvent)
		dashboard.POST("/event-new", eventHandler.HandleCreateEvent)
		dashboard.GET("/event/:eventID", eventHandler.HandleEventDetail)
		dashboard.GET("/event-edit/:eventID", eventHandler.HandleShowEditEvent)
		dashboard.POST("/event-edit/:eventID", eventHandler.HandleUpdateEvent)
		dashboard.POST("/event-delete/:eventID", eventHandler.HandleDeleteEvent)

		dashboard.GET("/venues", venueHandler.HandleListVenues)
		dashboard.GET("/venue-new", venueHandler.HandleShowNewVenue)
		dashboard.POST("/venue-new", venueHandler.HandleCreateVenue)
		dashboard.GET("/venue/:venueID", venueHandler.HandleVenueDetail)
		dashboard.GET("/venue-edit/:venueID", venueHandler.HandleShowEditVenue)
		dashboard.POST("/venue-edit/:venueID", venueHandler.HandleUpdateVenue)
		dashboard.POST("/venue-delete/:venueID", venueHandler.HandleDeleteVenue)
		dashboard.POST("/venue/:venueID/status/:status", venueHandler.HandleVenueStatus)

		dashboard.GET("/organizations", orgHandler.HandleListOrganizations)
		dashboard.GET("/organization-new", orgHandler.HandleShowNewOrganization)
		dashboard.POST("/organization-new", orgHandler.HandleCreateOrganization)
		dashboard.GET("/organization/:orgID", orgHandler.HandleOrganizationDetail)
		dashboard.GET("/organization-edit/:orgID", orgHandler.HandleShowEditOrganization)
		dashboard.POST("/organization-edit/:orgID", orgHandler.HandleUpdateOrganization)
		dashboard.POST("/organization-delete/:orgID", orgHandler.HandleDeleteOrganization)
		dashboard.POST("/organization/:orgID/status/:status", orgHandler.HandleOrganizationStatus)

		dashboard.GET("/registrations", registrationHandler.HandleRegistrations)
		dashboard.POST("/registrations/event/:eventID/register", registrationHandler.HandleRegister)
		dashboard.POST("/registrations/:attendeeID/cancel", registrationHandler.HandleCancelRegistration)
		dashboard.POST("/registrations/:attendeeID/status", registrationHandler.HandleUpdateAttendeeStatus)
		dashboard.POST("/registrations/tickets/purchase", registrationHandler.HandlePurchaseTickets)

		dashboard.GET("/profile", profileHandler.HandleShowProfile)
		dashboard.POST("/profile", profileHandler.HandleUpdateProfile)
	}

	s.Router.GET("/", handler.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
