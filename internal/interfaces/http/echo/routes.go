package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, leadHandler *LeadHandler) {
	server.POST("/api/v1/imports/leads", importHandler.ImportLeads)
	server.GET("/api/v1/leads", leadHandler.ListLeads)
	server.GET("/api/v1/leads/:id", leadHandler.GetLeadByID)
}
