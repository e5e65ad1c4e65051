package request

import (
	"log/slog"
	"net/http"
	"strconv"

	"lendshelf/model"
	requestsvc "lendshelf/service/request"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc requestsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isLibrarian(c echo.Context) bool {

	role, _ := c.Get("role").(string)
	return role == "librarian"
}

// Create a borrow request
// @Summary      Request an item
// @Description  Creates a pending borrow request for the authenticated requester
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateRequestReq  true  "Request payload"
// @Success      201  {object}  RequestResp
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "item not found"
// @Failure      409  {object}  map[string]any "item unavailable or already requested"
// @Router       /v1/requests [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("requester_id").(int64)

	out, err := h.Svc.RequestItem(c.Request().Context(), req.ItemID, uid)
	if err != nil {
		switch requestsvc.Code(err) {
		case requestsvc.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		case requestsvc.ErrItemUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "item unavailable"})
		case requestsvc.ErrAlreadyRequested:
			return c.JSON(http.StatusConflict, echo.Map{"message": "already requested"})
		default:
			h.Log.Error("request create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, toRequestResp(*out))
}

// DELETE /v1/requests/:id
func (h *Controller) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := c.Get("requester_id").(int64)

	if err := h.Svc.CancelRequest(c.Request().Context(), id, uid); err != nil {
		switch requestsvc.Code(err) {
		case requestsvc.ErrRequestNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		case requestsvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case requestsvc.ErrInvalidState:
			return c.JSON(http.StatusConflict, echo.Map{"message": "request is not pending"})
		default:
			h.Log.Error("request cancel", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cancelled"})
}

// GET /v1/requests/my
func (h *Controller) My(c echo.Context) error {
	uid, _ := c.Get("requester_id").(int64)
	rows, err := h.Svc.MyRequests(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("request list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": toRequestResps(rows)})
}

// POST /v1/requests/:id/approve  (librarian)
func (h *Controller) Approve(c echo.Context) error {
	return h.decide(c, true)
}

// POST /v1/requests/:id/reject  (librarian)
func (h *Controller) Reject(c echo.Context) error {
	return h.decide(c, false)
}

func (h *Controller) decide(c echo.Context, approve bool) error {
	if !isLibrarian(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var out *model.Request
	if approve {
		out, err = h.Svc.Approve(c.Request().Context(), id)
	} else {
		out, err = h.Svc.Reject(c.Request().Context(), id)
	}
	if err != nil {
		switch requestsvc.Code(err) {
		case requestsvc.ErrRequestNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		case requestsvc.ErrInvalidState:
			return c.JSON(http.StatusConflict, echo.Map{"message": "request is not pending"})
		default:
			h.Log.Error("request decide", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, toRequestResp(*out))
}
