package catalog

import (
	"log/slog"
	"net/http"
	"strconv"

	"lendshelf/model"
	catalogsvc "lendshelf/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc catalogsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isLibrarian(c echo.Context) bool {

	role, _ := c.Get("role").(string)
	return role == "librarian"
}

// List the catalog, optionally filtered
// @Summary      List items
// @Description  Full catalog, or a filtered view when text/category/cohort query params are given
// @Tags         items
// @Produce      json
// @Param        text      query  string  false  "substring match on title or author"
// @Param        category  query  string  false  "category tag or ALL"
// @Param        cohort    query  string  false  "cohort tag or ALL"
// @Success      200  {object}  map[string]any
// @Router       /v1/items [get]
func (h *Controller) List(c echo.Context) error {
	q := model.FilterQuery{
		Text:     c.QueryParam("text"),
		Category: c.QueryParam("category"),
		Cohort:   c.QueryParam("cohort"),
	}
	rows, err := h.Svc.Search(c.Request().Context(), q)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrBadFilter {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown category or cohort"})
		}
		h.Log.Error("item list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": toItemResps(rows)})
}

// GET /v1/items/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		}
		h.Log.Error("item detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, toItemResp(*row))
}

// PUT /v1/items/:id/availability  (librarian)
func (h *Controller) SetAvailability(c echo.Context) error {
	if !isLibrarian(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req SetAvailabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"available": "required"}})
	}
	row, err := h.Svc.SetAvailability(c.Request().Context(), id, *req.Available)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		}
		h.Log.Error("set availability error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, toItemResp(*row))
}
