package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	UserPortal *handlers.UserPortalHandler
	TechPortal *handlers.TechPortalHandler
	Admin      *handlers.AdminHandler
	Lookups    *handlers.LookupHandler
	Sessions   *session.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	portal := app.Group("/portal", cfg.Sessions.LoadSession)

	portal.Get("/login", cfg.Sessions.RedirectAuthenticated, cfg.Auth.LoginPage)
	portal.Post("/login", cfg.Auth.Login)
	portal.Post("/logout", cfg.Auth.Logout)
	portal.Get("/session", cfg.Auth.Session)

	user := portal.Group("/user", cfg.Sessions.RequireRole(domain.RoleUser))
	user.Get("/dashboard", cfg.UserPortal.Dashboard)
	user.Get("/tickets/:code", cfg.UserPortal.TicketDetail)
	user.Post("/tickets", cfg.UserPortal.CreateTicket)
	user.Get("/equipment", cfg.UserPortal.Equipment)
	user.Get("/catalog", cfg.UserPortal.Catalog)

	tech := portal.Group("/tech", cfg.Sessions.RequireRole(domain.RoleTechnician, domain.RoleAdmin))
	tech.Get("/dashboard", cfg.TechPortal.Dashboard)
	tech.Get("/tickets/:code", cfg.TechPortal.TicketDetail)
	tech.Put("/tickets/:code/status", cfg.TechPortal.UpdateStatus)
	tech.Put("/tickets/:code/assign", cfg.TechPortal.Assign)
	tech.Post("/tickets/:code/hardware", cfg.TechPortal.AssignHardware)
	tech.Post("/tickets/:code/notes", cfg.TechPortal.AddNote)
	tech.Get("/tickets/:code/emails", cfg.TechPortal.Emails)
	tech.Get("/hardware-options", cfg.TechPortal.HardwareOptions)

	lookups := portal.Group("/lookups", cfg.Sessions.RequireRole())
	lookups.Get("/statuses", cfg.Lookups.Statuses)
	lookups.Get("/technicians", cfg.Lookups.Technicians)
	lookups.Get("/hardware-technicians", cfg.Lookups.HardwareTechnicians)
	lookups.Get("/vendors", cfg.Lookups.Vendors)

	admin := portal.Group("/admin", cfg.Sessions.RequireRole(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.Users)
	admin.Get("/clients", cfg.Admin.Clients)
}
