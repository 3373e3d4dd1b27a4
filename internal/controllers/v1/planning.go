package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/calendar"
	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/planner"
	"github.com/crewplan/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterTimelineRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTimeline)
	r.GET("", GetTimeline)
}

func RegisterCapacityRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCapacity)
	r.GET("", GetCapacity)
}

// PlanningQuery is the window every planning endpoint operates on.
type PlanningQuery struct {
	StartDate string `form:"startDate" binding:"required"` // First day of the window
	EndDate   string `form:"endDate" binding:"required"`   // Last day of the window
	Location  string `form:"location"`                     // Location whose bank holidays apply. Defaults to none
}

// window parses and validates the query window. Validation happens before
// any record is fetched.
func (q PlanningQuery) window() (types.Date, types.Date, error) {
	start, err := types.ParseDate(q.StartDate)
	if err != nil {
		return types.Date{}, types.Date{}, httputil.ErrInvalidDate
	}

	end, err := types.ParseDate(q.EndDate)
	if err != nil {
		return types.Date{}, types.Date{}, httputil.ErrInvalidDate
	}

	if end.Before(start) {
		return types.Date{}, types.Date{}, planner.ErrInvalidDateRange
	}

	return start, end, nil
}

type TimelineResponse struct {
	Error *string           `json:"error" example:"the date must be specified as YYYY-MM-DD"` // The error, if any occurred
	Data  *planner.Timeline `json:"data"`                                                     // The allocation timeline
}

type CapacityResponse struct {
	Error *string           `json:"error" example:"the date must be specified as YYYY-MM-DD"` // The error, if any occurred
	Data  *planner.Capacity `json:"data"`                                                     // The weekly capacity heat map
}

// plannerEmployees loads the employees the planning endpoints work on, with
// their job titles and skills, converted to the planner representation.
func plannerEmployees(capacityOnly bool) ([]planner.Employee, error) {
	q := models.DB.
		Preload("JobTitle").
		Preload("Skills").
		Where("active = ?", true).
		Order("last_name ASC, first_name ASC")

	if capacityOnly {
		q = q.Where("include_in_capacity = ?", true)
	}

	var records []models.Employee
	err := q.Find(&records).Error
	if err != nil {
		return nil, err
	}

	employees := make([]planner.Employee, 0, len(records))
	for _, e := range records {
		employees = append(employees, planner.Employee{
			ID:       e.ID,
			Name:     e.Name(),
			JobTitle: e.JobTitle.Name,
			Skills:   e.SkillNames(),
		})
	}

	return employees, nil
}

// plannerProjects loads the projects referenced by the bookings, ordered by
// name, converted to the planner representation.
func plannerProjects(bookings []planner.Booking) ([]planner.Project, error) {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, b := range bookings {
		if !seen[b.ProjectID] {
			seen[b.ProjectID] = true
			ids = append(ids, b.ProjectID)
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}

	var records []models.Project
	err := models.DB.
		Preload("ProjectType").
		Preload("CommercialStatus").
		Order("name ASC").
		Find(&records, ids).Error
	if err != nil {
		return nil, err
	}

	projects := make([]planner.Project, 0, len(records))
	for _, p := range records {
		project := planner.Project{
			ID:               p.ID,
			Name:             p.Name,
			StartDate:        p.StartDate,
			CommercialStatus: p.CommercialStatus.Name,
		}

		if p.ProjectTypeID != nil {
			project.Type = p.ProjectType.Name
		}

		if p.EndDate != nil {
			project.EndDate = *p.EndDate
		}

		projects = append(projects, project)
	}

	return projects, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Planning
// @Success		204
// @Router			/v1/timeline [options]
func OptionsTimeline(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Planning
// @Success		204
// @Router			/v1/capacity [options]
func OptionsCapacity(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get allocation timeline
// @Description	Returns the day-by-day allocation timeline for a date window. Employees without a booking in the window appear in the flex group, every other row belongs to a project group.
// @Tags			Planning
// @Produce		json
// @Success		200	{object}	TimelineResponse
// @Failure		400	{object}	TimelineResponse
// @Failure		500	{object}	TimelineResponse
// @Router			/v1/timeline [get]
// @Param			startDate	query	string	true	"First day of the window"
// @Param			endDate		query	string	true	"Last day of the window"
// @Param			location	query	string	false	"Location whose bank holidays apply"
func GetTimeline(c *gin.Context) {
	var query PlanningQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TimelineResponse{
			Error: &s,
		})
		return
	}

	start, end, err := query.window()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TimelineResponse{
			Error: &e,
		})
		return
	}

	holidays, err := models.HolidayCalendar(models.DB, query.Location)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TimelineResponse{
			Error: &e,
		})
		return
	}

	employees, err := plannerEmployees(false)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TimelineResponse{
			Error: &e,
		})
		return
	}

	bookings, err := models.BookingsOverlapping(models.DB, start, end)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TimelineResponse{
			Error: &e,
		})
		return
	}

	projects, err := plannerProjects(bookings)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TimelineResponse{
			Error: &e,
		})
		return
	}

	timeline, err := planner.BuildTimeline(planner.TimelineInput{
		Start:     start,
		End:       end,
		Employees: employees,
		Projects:  projects,
		Bookings:  bookings,
	}, holidays)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TimelineResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TimelineResponse{Data: &timeline})
}

// @Summary		Get capacity heat map
// @Description	Returns the weekly capacity heat map for a date window. Only employees that count towards capacity appear. Each cell reports allocated hours against the 40 hour week and the matching heat color.
// @Tags			Planning
// @Produce		json
// @Success		200	{object}	CapacityResponse
// @Failure		400	{object}	CapacityResponse
// @Failure		500	{object}	CapacityResponse
// @Router			/v1/capacity [get]
// @Param			startDate	query	string	true	"First day of the window"
// @Param			endDate		query	string	true	"Last day of the window"
func GetCapacity(c *gin.Context) {
	var query PlanningQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CapacityResponse{
			Error: &s,
		})
		return
	}

	start, end, err := query.window()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CapacityResponse{
			Error: &e,
		})
		return
	}

	employees, err := plannerEmployees(true)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CapacityResponse{
			Error: &e,
		})
		return
	}

	// Bookings are fetched for full weeks so that a booking overlapping the
	// window's first or last week is counted completely.
	bookings, err := models.BookingsOverlapping(models.DB, calendar.WeekCommencing(start), calendar.WeekCommencing(end).AddDays(6))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CapacityResponse{
			Error: &e,
		})
		return
	}

	capacity, err := planner.BuildCapacity(planner.CapacityInput{
		Start:     start,
		End:       end,
		Employees: employees,
		Bookings:  bookings,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CapacityResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CapacityResponse{Data: &capacity})
}
