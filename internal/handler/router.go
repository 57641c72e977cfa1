package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	FrontDesk    *api.FrontDeskHandler
	Room         *api.RoomHandler
	Guest        *api.GuestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())

		receptionist := authMiddleware.RequireRoleAtLeast(staff.RoleReceptionist)
		admin := authMiddleware.RequireRoleAtLeast(staff.RoleAdmin)

		reservations := protected.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListByHolder},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodGet, Path: "/:id/nights", Handler: h.Reservation.GetNights},
				{Method: http.MethodPost, Path: "/:id/expand", Handler: h.Reservation.ExpandNights, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Reservation.SetStatus, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		addRoutes(protected, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.GetFreeRooms},
			{Method: http.MethodGet, Path: "/frontdesk/arrivals", Handler: h.FrontDesk.Arrivals},
			{Method: http.MethodGet, Path: "/frontdesk/in-house", Handler: h.FrontDesk.InHouse},
			{Method: http.MethodGet, Path: "/frontdesk/departures", Handler: h.FrontDesk.Departures},
		})

		rooms := protected.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetRoom},
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateRoom, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.RetireRoom, Mw: []gin.HandlerFunc{admin}},
			})
		}

		addRoutes(protected, []route{
			{Method: http.MethodGet, Path: "/room-types", Handler: h.Room.ListRoomTypes},
			{Method: http.MethodPost, Path: "/room-types", Handler: h.Room.CreateRoomType, Mw: []gin.HandlerFunc{admin}},
		})

		guests := protected.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Guest.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Guest.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Guest.Register, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Guest.Update, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Guest.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
