package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusops/venue-booking/internal/dto"
	"github.com/campusops/venue-booking/internal/middleware"
	"github.com/campusops/venue-booking/internal/models"
	"github.com/campusops/venue-booking/internal/repository"
	"github.com/campusops/venue-booking/internal/service"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// Venue reads are public; mutations require an admin identity.
func (h *VenueHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/venues")
	g.GET("", h.ListVenues)
	g.GET("/:id", h.GetVenue)
	g.POST("", h.CreateVenue, middleware.Identity)
	g.PUT("/:id", h.UpdateVenue, middleware.Identity)
	g.DELETE("/:id", h.DeleteVenue, middleware.Identity)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	filter := repository.VenueFilter{
		Type:   models.VenueType(c.QueryParam("type")),
		Status: models.VenueStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	}

	venues, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OKList(venues, len(venues)))
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	venue, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OK(venue))
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	venue, err := h.svc.Create(c.Request().Context(), middleware.CallerIdentity(c), service.CreateVenueParams{
		Name:        req.Name,
		Type:        models.VenueType(req.Type),
		Capacity:    req.Capacity,
		Location:    req.Location,
		Facilities:  req.Facilities,
		Description: req.Description,
		Status:      models.VenueStatus(req.Status),
		Images:      req.Images,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, dto.OK(venue))
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	params := service.UpdateVenueParams{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Location:    req.Location,
		Facilities:  req.Facilities,
		Description: req.Description,
		Images:      req.Images,
	}
	if req.Type != nil {
		t := models.VenueType(*req.Type)
		params.Type = &t
	}
	if req.Status != nil {
		s := models.VenueStatus(*req.Status)
		params.Status = &s
	}

	venue, err := h.svc.Update(c.Request().Context(), middleware.CallerIdentity(c), id, params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OK(venue))
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), middleware.CallerIdentity(c), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OKMessage("venue deleted successfully"))
}
