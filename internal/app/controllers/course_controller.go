package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/middleware"
	"github.com/yigit/devcamper/internal/pkg/helpers"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses lists every course with its bootcamp
// @Summary List courses
// @Description Lists every course with its bootcamp name and description. Supports the same select, sort and filter parameters as bootcamps; page or limit switches to a paginated response.
// @Tags courses
// @Produce json
// @Param select query string false "Comma-separated fields to return"
// @Param sort query string false "Comma-separated sort fields" default(-createdAt)
// @Param page query int false "Page number"
// @Param limit query int false "Page size, at most 100"
// @Param tuition[lte] query number false "Maximum tuition"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) error {
	page, err := c.courseService.GetCourses(ctx.Request.Context(), ctx.Request.URL.Query())
	if err != nil {
		return err
	}

	data, err := dto.Project(page.Courses, page.Query.Fields)
	if err != nil {
		return err
	}

	if !page.Query.Paged {
		ctx.JSON(http.StatusOK, dto.NewListResponse(data, len(page.Courses)))
		return nil
	}

	pagination := helpers.NewPagination(page.Query.Page, page.Query.Limit, page.Total)
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(data, len(page.Courses), pagination))
	return nil
}

// GetBootcampCourses lists the courses of one bootcamp
// @Summary List the courses of a bootcamp
// @Tags courses
// @Produce json
// @Param id path string true "Bootcamp ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved"
// @Failure 404 {object} dto.ErrorResponse "Malformed bootcamp id"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps/{id}/courses [get]
func (c *CourseController) GetBootcampCourses(ctx *gin.Context) error {
	bootcampID, err := parseID(ctx)
	if err != nil {
		return err
	}

	courses, err := c.courseService.GetCoursesByBootcamp(ctx.Request.Context(), bootcampID)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(courses, len(courses)))
	return nil
}

// GetCourse retrieves one course with its bootcamp
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
	return nil
}

// CreateCourse adds a course to a bootcamp
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Bootcamp ID" Format(uuid)
// @Param request body dto.CreateCourseRequest true "Course"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /bootcamps/{id}/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) error {
	bootcampID, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		return err
	}

	course := req.ToModel(bootcampID)
	if err := c.courseService.CreateCourse(ctx.Request.Context(), bootcampID, course); err != nil {
		return err
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(course))
	return nil
}

// UpdateCourse updates the fields present in the body
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCourseRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		return err
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, req.ToUpdate())
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
	return nil
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Deleted course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	course, err := c.courseService.DeleteCourse(ctx.Request.Context(), id)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
	return nil
}
