package routes

import (
	"github.com/go-chi/chi/v5"

	"office-experiment/dutyboard/internal/api"
)

// RegisterAPIRoutes registers all /api routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	dutySvc := deps.Services.Duty
	memberSvc := deps.Services.Member

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/duties", api.GetDutiesHandler(dutySvc))
		apiRouter.Get("/duties/recent", api.GetRecentDutyHandler(dutySvc))
		apiRouter.Post("/duties/complete", api.CompleteDutyHandler(dutySvc))
		apiRouter.Post("/duties/uncomplete", api.UncompleteDutyHandler(dutySvc))

		apiRouter.Get("/members", api.GetMembersHandler(memberSvc))
		apiRouter.Post("/members", api.AddMemberHandler(memberSvc))
		apiRouter.Put("/members", api.UpdateMemberHandler(memberSvc))
		apiRouter.Delete("/members", api.DeactivateMemberHandler(memberSvc))
	})
}
