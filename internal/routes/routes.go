package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/config"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Client    *handlers.ClientHandler
	Partner   *handlers.PartnerHandler
	Portfolio *handlers.PortfolioHandler
	Admin     *handlers.AdminHandler
	Health    *handlers.HealthHandler
}

// SetupInternal mounts operator endpoints. The app it is given must only
// listen on a private address.
func SetupInternal(app *fiber.App) {
	app.Get("/metrics", metrics.Handler())
}

func Setup(app *fiber.App, cfg *config.Config, users middleware.UserLoader, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(perIPLimiter(60))

	api.Get("/health", h.Health.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(perIPLimiter(10))
	auth.Post("/signup", h.Auth.Signup)
	auth.Post("/verify-otp", h.Auth.VerifyOTP)
	auth.Post("/request-otp", h.Auth.RequestOTP)
	auth.Post("/login", h.Auth.Login)

	jwt := middleware.JWTProtected(cfg)
	anyRole := middleware.RequireRole(users)
	client := middleware.RequireRole(users, models.RoleClient)
	partner := middleware.RequireRole(users, models.RolePartner)
	admin := middleware.RequireRole(users, models.RoleAdmin)

	auth.Get("/profile", jwt, anyRole, h.Auth.Profile)

	api.Get("/partners", h.Partner.Browse)
	api.Get("/partners/:id", h.Partner.PartnerDetails)

	api.Post("/inquiry", jwt, client, h.Client.SubmitInquiry)
	clients := api.Group("/client", jwt, client)
	clients.Get("/inquiries", h.Client.ListInquiries)
	clients.Get("/inquiries/:id/responses", h.Client.InquiryResponses)

	partners := api.Group("/partner", jwt, partner)
	partners.Post("/profile", h.Partner.UpsertProfile)
	partners.Get("/profile", h.Partner.GetProfile)
	partners.Get("/leads", h.Partner.ListLeads)
	partners.Put("/leads/:id/respond", h.Partner.RespondToLead)
	partners.Post("/portfolio", h.Portfolio.AddItem)
	partners.Get("/portfolio", h.Portfolio.ListItems)
	partners.Put("/portfolio/:id", h.Portfolio.UpdateItem)
	partners.Delete("/portfolio/:id", h.Portfolio.DeleteItem)

	admins := api.Group("/admin", jwt, admin)
	admins.Get("/verifications", h.Admin.ListVerifications)
	admins.Put("/verify/:id", h.Admin.VerifyPartner)
	admins.Get("/dashboard", h.Admin.Dashboard)
	admins.Put("/partners/:id/promote", h.Admin.PromotePartner)
}

func perIPLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
