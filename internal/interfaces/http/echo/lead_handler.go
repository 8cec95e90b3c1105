package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/miestilo/leadcrm/internal/application/lead"
)

type LeadHandler struct {
	getLeadByID app.GetLeadByID
	listLeads   app.ListLeads
}

func NewLeadHandler(getLeadByID app.GetLeadByID, listLeads app.ListLeads) *LeadHandler {
	return &LeadHandler{getLeadByID: getLeadByID, listLeads: listLeads}
}

func (h *LeadHandler) GetLeadByID(c echo.Context) error {
	out, err := h.getLeadByID.Execute(c.Request().Context(), app.GetLeadByIDInput{
		ID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidLeadID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_lead_id",
				Message: "id must be a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrLeadNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "lead not found",
			}})
		}

		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get lead",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *LeadHandler) ListLeads(c echo.Context) error {
	out, err := h.listLeads.Execute(c.Request().Context(), app.ListLeadsInput{
		Status:     c.QueryParam("status"),
		AssignedTo: c.QueryParam("assigned_to"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to list leads",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
