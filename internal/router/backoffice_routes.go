package router

import (
	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/handler"
	"github.com/carlsburger/GastroCore-sub002/internal/middleware"
)

// RegisterBackoffice registers the daily-service endpoints under /v1.
// All routes require a valid JWT and either the SERVICE or the ADMIN
// role: reservation intake and lifecycle, the availability grid, the
// occupancy view, table-plan reads and combinations.
func RegisterBackoffice(e *echo.Echo, b *handler.BackofficeHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "SERVICE"),
	)

	// ---- Reservations ----
	g.POST("/reservations", b.CreateReservation)
	g.GET("/reservations", b.ListReservations)
	g.GET("/reservations/:id", b.GetReservation)
	g.PUT("/reservations/:id", b.UpdateReservation)
	g.PUT("/reservations/:id/table", b.AssignTable)
	g.POST("/reservations/:id/confirm", b.ReservationAction("confirm"))
	g.POST("/reservations/:id/cancel", b.ReservationAction("cancel"))
	g.POST("/reservations/:id/arrive", b.ReservationAction("arrive"))
	g.POST("/reservations/:id/complete", b.ReservationAction("complete"))
	g.POST("/reservations/:id/no-show", b.ReservationAction("no-show"))
	g.POST("/reservations/:id/resend", b.ResendConfirmation)

	// ---- Table plan ----
	g.GET("/availability", b.GetAvailability)
	g.GET("/occupancy", b.GetOccupancy)
	g.GET("/areas", b.ListAreas)
	g.GET("/areas/:id", b.GetArea)
	g.GET("/tables", b.ListTables)
	g.GET("/tables/:id", b.GetTable)
	g.GET("/events", b.ListEventBlocks)

	// ---- Combinations ----
	g.POST("/combinations", b.CreateCombination)
	g.GET("/combinations", b.ListCombinations)
	g.GET("/combinations/:id", b.GetCombination)
	g.DELETE("/combinations/:id", b.DeleteCombination)
}
