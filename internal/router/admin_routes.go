package router

import (
	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/handler"
	"github.com/carlsburger/GastroCore-sub002/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1: floor-plan
// mutations, staff records, payment administration, the marketing
// workflow and the POS reconciliation.
func RegisterAdmin(e *echo.Echo, b *handler.BackofficeHandler, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Floor plan ----
	g.POST("/areas", b.CreateArea)
	g.PUT("/areas/:id", b.UpdateArea)
	g.DELETE("/areas/:id", b.DeleteArea)
	g.POST("/tables", b.CreateTable)
	g.PUT("/tables/:id", b.UpdateTable)
	g.DELETE("/tables/:id", b.DeleteTable)
	g.POST("/events", b.CreateEventBlock)
	g.DELETE("/events/:id", b.DeleteEventBlock)

	// ---- Staff ----
	g.POST("/staff", a.CreateStaff)
	g.GET("/staff", a.ListStaff)
	g.GET("/staff/:id", a.GetStaff)
	g.PUT("/staff/:id", a.UpdateStaff)
	g.DELETE("/staff/:id", a.DeleteStaff)
	g.POST("/staff/:id/verify-pin", a.VerifyPIN)

	// ---- Payments ----
	g.POST("/payments", a.CreatePayment)
	g.GET("/payments", a.ListPayments)
	g.GET("/payments/:id", a.GetPayment)
	g.POST("/payments/:id/refund", a.RefundPayment)

	// ---- Marketing ----
	g.POST("/marketing", a.CreateContent)
	g.GET("/marketing", a.ListContent)
	g.GET("/marketing/:id", a.GetContent)
	g.PUT("/marketing/:id", a.UpdateContent)
	g.DELETE("/marketing/:id", a.DeleteContent)
	g.POST("/marketing/:id/submit", a.ContentAction("submit"))
	g.POST("/marketing/:id/approve", a.ContentAction("approve"))
	g.POST("/marketing/:id/reject", a.ContentAction("reject"))
	g.POST("/marketing/:id/publish", a.ContentAction("publish"))
	g.POST("/marketing/:id/archive", a.ContentAction("archive"))

	// ---- POS reconciliation ----
	g.PUT("/pos/statements/:month", a.UpsertStatement)
	g.GET("/pos/statements/:month", a.GetStatement)
	g.GET("/pos/reconciliation", a.Reconciliation)
}
