package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sportmeet/sportmeet-api/docs"
	v1 "github.com/sportmeet/sportmeet-api/internal/api/handler/v1"
	"github.com/sportmeet/sportmeet-api/internal/api/middleware"
	"github.com/sportmeet/sportmeet-api/internal/config"
	"github.com/sportmeet/sportmeet-api/internal/options"
	"github.com/sportmeet/sportmeet-api/internal/repository"
	"github.com/sportmeet/sportmeet-api/internal/repository/dao"
	"github.com/sportmeet/sportmeet-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, opts *options.Loader) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	commentSvc := s.initCommentService(db)

	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(uSvc)
	eventHandler := s.initEventHandler(db, commentSvc, uSvc)
	commentHandler := v1.NewCommentHandler(commentSvc, uSvc)
	notificationHandler := s.initNotificationHandler(db, uSvc)
	optionsHandler := v1.NewOptionsHandler(opts)

	s.MountHandlers(authHandler, userHandler, eventHandler, commentHandler, notificationHandler, optionsHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB, commentSvc *service.CommentService, uSvc *service.UserService) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db), dao.NewParticipantDAO(db), dao.NewInterestDAO(db))
	notifier := service.NewNotificationService(repository.NewNotificationRepository(dao.NewNotificationDAO(db)))
	svc := service.NewEventService(repo, notifier)
	handler := v1.NewEventHandler(svc, commentSvc, uSvc)

	return handler
}

func (s *Server) initCommentService(db *gorm.DB) *service.CommentService {
	repo := repository.NewCommentRepository(dao.NewCommentDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db), dao.NewParticipantDAO(db), dao.NewInterestDAO(db))
	svc := service.NewCommentService(repo, eventRepo)

	return svc
}

func (s *Server) initNotificationHandler(db *gorm.DB, uSvc *service.UserService) *v1.NotificationHandler {
	repo := repository.NewNotificationRepository(dao.NewNotificationDAO(db))
	svc := service.NewNotificationService(repo)
	handler := v1.NewNotificationHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	commentHandler *v1.CommentHandler,
	notificationHandler *v1.NotificationHandler,
	optionsHandler *v1.OptionsHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/options", optionsHandler.HandleGetOptions)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/:userID", userHandler.HandleGetUser)

		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.GET("/events", eventHandler.HandleListEvents)
		authed.GET("/events/recent", eventHandler.HandleRecentEvents)
		authed.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authed.DELETE("/events/:eventID", eventHandler.HandleCancelEvent)
		authed.POST("/events/:eventID/join", eventHandler.HandleJoinEvent)
		authed.POST("/events/:eventID/leave", eventHandler.HandleLeaveEvent)
		authed.POST("/events/:eventID/interest", eventHandler.HandleToggleInterest)

		authed.GET("/events/:eventID/comments", commentHandler.HandleListComments)
		authed.POST("/events/:eventID/comments", commentHandler.HandleAddComment)
		authed.DELETE("/events/:eventID/comments/:commentID", commentHandler.HandleDeleteComment)

		authed.GET("/me/events", eventHandler.HandleMyEvents)

		authed.GET("/notifications", notificationHandler.HandleListNotifications)
		authed.GET("/notifications/unread-count", notificationHandler.HandleUnreadCount)
		authed.POST("/notifications/:notificationID/read", notificationHandler.HandleMarkRead)
		authed.POST("/notifications/read-all", notificationHandler.HandleMarkAllRead)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "SportMeet API"
	docs.SwaggerInfo.Description = "REST API for organizing local sports meetups."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
