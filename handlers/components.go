package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dashcomposer/db"
	"dashcomposer/models"
	"dashcomposer/validation"
)

// CreateComponentHandler creates a dashboard component.
// @Summary      Create a component
// @Tags         Components
// @Accept       json
// @Produce      json
// @Param        request  body      models.ComponentCreateRequest  true  "Component to create"
// @Success      201      {object}  models.Component
// @Failure      400      {object}  map[string]string  "Validation error or duplicate name"
// @Router       /api/components [post]
func (h *Handlers) CreateComponentHandler(c *gin.Context) {
	var req models.ComponentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	component, err := h.components.Create(req)
	if err != nil {
		h.componentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, component)
}

// ListComponentsHandler lists components with pagination.
// @Summary      List components
// @Tags         Components
// @Produce      json
// @Param        skip   query     int  false  "Records to skip"
// @Param        limit  query     int  false  "Maximum records"  default(100)
// @Success      200    {array}   models.Component
// @Router       /api/components [get]
func (h *Handlers) ListComponentsHandler(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	components, err := h.components.List(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list components"})
		return
	}
	c.JSON(http.StatusOK, components)
}

// GetComponentHandler returns one component by id.
// @Summary      Get a component
// @Tags         Components
// @Produce      json
// @Param        id   path      int  true  "Component ID"
// @Success      200  {object}  models.Component
// @Failure      404  {object}  map[string]string
// @Router       /api/components/{id} [get]
func (h *Handlers) GetComponentHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}
	component, err := h.components.Get(id)
	if err != nil {
		h.componentError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// UpdateComponentHandler applies a partial update to a component.
// @Summary      Update a component
// @Tags         Components
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Component ID"
// @Param        request  body      models.ComponentUpdateRequest  true  "Fields to update"
// @Success      200      {object}  models.Component
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/components/{id} [put]
func (h *Handlers) UpdateComponentHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}
	var req models.ComponentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	component, err := h.components.Update(id, req)
	if err != nil {
		h.componentError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// DeleteComponentHandler removes a component.
// @Summary      Delete a component
// @Tags         Components
// @Param        id   path      int  true  "Component ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/components/{id} [delete]
func (h *Handlers) DeleteComponentHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}
	if err := h.components.Delete(id); err != nil {
		h.componentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Component deleted successfully"})
}

// ComponentsByTypeHandler filters components by type.
// @Summary      List components by type
// @Tags         Components
// @Produce      json
// @Param        component_type  path      string  true  "chart, table or metric"
// @Success      200             {array}   models.Component
// @Router       /api/components/type/{component_type} [get]
func (h *Handlers) ComponentsByTypeHandler(c *gin.Context) {
	components, err := h.components.ByType(c.Param("component_type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list components"})
		return
	}
	c.JSON(http.StatusOK, components)
}

// ComponentsBySourceHandler filters components by data source.
// @Summary      List components by data source
// @Tags         Components
// @Produce      json
// @Param        data_source  path      string  true  "mysql, mongodb or csv"
// @Success      200          {array}   models.Component
// @Router       /api/components/source/{data_source} [get]
func (h *Handlers) ComponentsBySourceHandler(c *gin.Context) {
	components, err := h.components.BySource(c.Param("data_source"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list components"})
		return
	}
	c.JSON(http.StatusOK, components)
}

// ComponentsByIntervalHandler filters components by refresh interval.
// @Summary      List components by interval
// @Tags         Components
// @Produce      json
// @Param        interval  path      string  true  "Normalized interval, e.g. '10 min'"
// @Success      200       {array}   models.Component
// @Router       /api/components/interval/{interval} [get]
func (h *Handlers) ComponentsByIntervalHandler(c *gin.Context) {
	components, err := h.components.ByInterval(c.Param("interval"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list components"})
		return
	}
	c.JSON(http.StatusOK, components)
}

// SearchComponentsHandler searches components by name or description.
// @Summary      Search components
// @Tags         Components
// @Produce      json
// @Param        q      query     string  true   "Search term"
// @Param        skip   query     int     false  "Records to skip"
// @Param        limit  query     int     false  "Maximum records"  default(100)
// @Success      200    {array}   models.Component
// @Router       /api/components/search [get]
func (h *Handlers) SearchComponentsHandler(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	components, err := h.components.Search(term, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search components"})
		return
	}
	c.JSON(http.StatusOK, components)
}

// RecentComponentsHandler lists recently created components.
// @Summary      List recent components
// @Tags         Components
// @Produce      json
// @Param        limit  query     int  false  "Maximum records"  default(10)
// @Success      200    {array}   models.Component
// @Router       /api/components/recent [get]
func (h *Handlers) RecentComponentsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	components, err := h.components.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list components"})
		return
	}
	c.JSON(http.StatusOK, components)
}

// ComponentStatisticsHandler returns component counts by type and source.
// @Summary      Get component statistics
// @Tags         Components
// @Produce      json
// @Success      200  {object}  models.ComponentStatistics
// @Router       /api/components/statistics [get]
func (h *Handlers) ComponentStatisticsHandler(c *gin.Context) {
	stats, err := h.components.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// componentError maps service errors onto precise status codes:
// validation and duplicates are the client's fault, missing rows are
// 404, everything else is a 500.
func (h *Handlers) componentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, validation.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Component not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
