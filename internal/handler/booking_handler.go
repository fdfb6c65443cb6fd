package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusops/venue-booking/internal/dto"
	"github.com/campusops/venue-booking/internal/middleware"
	"github.com/campusops/venue-booking/internal/models"
	"github.com/campusops/venue-booking/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/bookings", middleware.Identity)
	g.GET("", h.ListBookings)
	g.POST("", h.CreateBooking)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.UpdateBooking)
	g.DELETE("/:id", h.DeleteBooking)
	g.PUT("/:id/status", h.SetBookingStatus)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Create(c.Request().Context(), middleware.CallerIdentity(c), service.CreateBookingParams{
		VenueID:     req.VenueID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Purpose:     models.BookingPurpose(req.Purpose),
		Attendees:   req.Attendees,
		Notes:       req.Notes,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, dto.OK(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.Get(c.Request().Context(), middleware.CallerIdentity(c), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OK(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	params := service.ListBookingsParams{
		Status: models.BookingStatus(c.QueryParam("status")),
	}
	if v := c.QueryParam("venue"); v != "" {
		venueID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid venue filter")
		}
		params.VenueID = uint(venueID)
	}

	bookings, err := h.svc.List(c.Request().Context(), middleware.CallerIdentity(c), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OKList(bookings, len(bookings)))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	params := service.UpdateBookingParams{
		VenueID:     req.VenueID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Attendees:   req.Attendees,
		Notes:       req.Notes,
	}
	if req.Purpose != nil {
		p := models.BookingPurpose(*req.Purpose)
		params.Purpose = &p
	}

	booking, err := h.svc.Update(c.Request().Context(), middleware.CallerIdentity(c), id, params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OK(booking))
}

func (h *BookingHandler) SetBookingStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.SetBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.SetStatus(c.Request().Context(), middleware.CallerIdentity(c), id,
		models.BookingStatus(req.Status), req.RejectionReason)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OK(booking))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), middleware.CallerIdentity(c), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, dto.OKMessage("booking deleted successfully"))
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func mapServiceError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrVenueNotFound), errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
