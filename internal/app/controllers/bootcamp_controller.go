package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/middleware"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/helpers"
)

// BootcampController handles bootcamp endpoints
type BootcampController struct {
	bootcampService *services.BootcampService
}

// NewBootcampController creates a new BootcampController
func NewBootcampController(bootcampService *services.BootcampService) *BootcampController {
	return &BootcampController{
		bootcampService: bootcampService,
	}
}

// GetBootcamps lists bootcamps
// @Summary List bootcamps
// @Description Lists bootcamps with their courses. Any field can be filtered with field=value or field[op]=value where op is one of gt, gte, lt, lte, in, eq.
// @Tags bootcamps
// @Produce json
// @Param select query string false "Comma-separated fields to return, id is always included" example(name,description)
// @Param sort query string false "Comma-separated sort fields, prefix with - for descending" default(-createdAt)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, at most 100" default(1) maximum(100)
// @Param averageCost[gte] query number false "Minimum average cost"
// @Param careers[in] query string false "Comma-separated careers, any of which must match"
// @Success 200 {object} dto.APIResponse{data=[]models.Bootcamp} "Bootcamps retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps [get]
func (c *BootcampController) GetBootcamps(ctx *gin.Context) error {
	page, err := c.bootcampService.GetBootcamps(ctx.Request.Context(), ctx.Request.URL.Query())
	if err != nil {
		return err
	}

	data, err := dto.Project(page.Bootcamps, page.Query.Fields)
	if err != nil {
		return err
	}

	pagination := helpers.NewPagination(page.Query.Page, page.Query.Limit, page.Total)
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(data, len(page.Bootcamps), pagination))
	return nil
}

// GetBootcamp retrieves one bootcamp
// @Summary Get a bootcamp
// @Tags bootcamps
// @Produce json
// @Param id path string true "Bootcamp ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Bootcamp} "Bootcamp retrieved"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps/{id} [get]
func (c *BootcampController) GetBootcamp(ctx *gin.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	bootcamp, err := c.bootcampService.GetBootcampByID(ctx.Request.Context(), id)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(bootcamp))
	return nil
}

// CreateBootcamp creates a bootcamp
// @Summary Create a bootcamp
// @Description Creates a bootcamp. The address is geocoded into its location.
// @Tags bootcamps
// @Accept json
// @Produce json
// @Param request body dto.CreateBootcampRequest true "Bootcamp"
// @Success 201 {object} dto.APIResponse{data=models.Bootcamp} "Bootcamp created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed, duplicate name or address not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps [post]
func (c *BootcampController) CreateBootcamp(ctx *gin.Context) error {
	var req dto.CreateBootcampRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		return err
	}

	bootcamp := req.ToModel()
	if err := c.bootcampService.CreateBootcamp(ctx.Request.Context(), bootcamp, req.Address); err != nil {
		return err
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(bootcamp))
	return nil
}

// UpdateBootcamp updates the fields present in the body
// @Summary Update a bootcamp
// @Tags bootcamps
// @Accept json
// @Produce json
// @Param id path string true "Bootcamp ID" Format(uuid)
// @Param request body dto.UpdateBootcampRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Bootcamp} "Bootcamp updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps/{id} [put]
func (c *BootcampController) UpdateBootcamp(ctx *gin.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateBootcampRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		return err
	}

	bootcamp, err := c.bootcampService.UpdateBootcamp(ctx.Request.Context(), id, req.ToUpdate())
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(bootcamp))
	return nil
}

// DeleteBootcamp removes a bootcamp and its courses
// @Summary Delete a bootcamp
// @Description Deletes a bootcamp together with all of its courses.
// @Tags bootcamps
// @Produce json
// @Param id path string true "Bootcamp ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Bootcamp} "Deleted bootcamp"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps/{id} [delete]
func (c *BootcampController) DeleteBootcamp(ctx *gin.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	bootcamp, err := c.bootcampService.DeleteBootcamp(ctx.Request.Context(), id)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(bootcamp))
	return nil
}

// GetBootcampsInRadius finds bootcamps near a zipcode
// @Summary Bootcamps within a radius
// @Tags bootcamps
// @Produce json
// @Param zipcode path string true "Center zipcode" example(02118)
// @Param distance path number true "Radius in miles" example(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Bootcamp} "Bootcamps inside the radius"
// @Failure 400 {object} dto.ErrorResponse "Invalid distance"
// @Failure 404 {object} dto.ErrorResponse "Zipcode not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps/radius/{zipcode}/{distance} [get]
func (c *BootcampController) GetBootcampsInRadius(ctx *gin.Context) error {
	zipcode := ctx.Param("zipcode")
	distance, err := strconv.ParseFloat(ctx.Param("distance"), 64)
	if err != nil || distance < 0 {
		return apperrors.NewBadRequestError("Distance must be a non-negative number")
	}

	bootcamps, err := c.bootcampService.GetBootcampsInRadius(ctx.Request.Context(), zipcode, distance)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(bootcamps, len(bootcamps)))
	return nil
}
