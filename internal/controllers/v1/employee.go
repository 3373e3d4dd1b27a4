package v1

import (
	"fmt"
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	cp_uuid "github.com/crewplan/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

func RegisterEmployeeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsEmployees)
		r.GET("", GetEmployees)
		r.POST("", CreateEmployees)
	}
	{
		r.OPTIONS("/:id", OptionsEmployeeDetail)
		r.GET("/:id", GetEmployee)
		r.PATCH("/:id", UpdateEmployee)
		r.DELETE("/:id", DeleteEmployee)
	}
}

// loadSkills returns the skill records for the IDs. Every ID must refer to
// an existing skill.
func loadSkills(ids []uuid.UUID) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var skills []models.Skill
	err := models.DB.Find(&skills, ids).Error
	if err != nil {
		return nil, err
	}

	if len(skills) != len(ids) {
		return nil, errSkillUnknown
	}

	return skills, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Employees
// @Success		204
// @Router			/v1/employees [options]
func OptionsEmployees(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/employees/{id} [options]
func OptionsEmployeeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Employee{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create employees
// @Description	Creates new employees
// @Tags			Employees
// @Produce		json
// @Success		201			{object}	EmployeeCreateResponse
// @Failure		400			{object}	EmployeeCreateResponse
// @Failure		404			{object}	EmployeeCreateResponse
// @Failure		500			{object}	EmployeeCreateResponse
// @Param			employees	body		[]EmployeeEditable	true	"Employees"
// @Router			/v1/employees [post]
func CreateEmployees(c *gin.Context) {
	var editables []EmployeeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EmployeeCreateResponse{}

	for _, editable := range editables {
		skills, err := loadSkills(editable.SkillIDs)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		employee := editable.model()
		employee.Skills = skills

		err = models.DB.WithContext(c).Create(&employee).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newEmployee(c, employee)
		r.Data = append(r.Data, EmployeeResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get employees
// @Description	Returns a list of employees
// @Tags			Employees
// @Produce		json
// @Success		200	{object}	EmployeeListResponse
// @Failure		400	{object}	EmployeeListResponse
// @Failure		500	{object}	EmployeeListResponse
// @Router			/v1/employees [get]
// @Param			name				query	string	false	"Search in first and last name"
// @Param			skill				query	string	false	"Glob pattern matched against skill names, e.g. Go*"
// @Param			location			query	string	false	"Filter by location"
// @Param			jobTitle			query	string	false	"Filter by job title ID"
// @Param			department			query	string	false	"Filter by department ID"
// @Param			includeInCapacity	query	bool	false	"Only employees that do or do not count towards capacity"
// @Param			active				query	bool	false	"Is the employee in active use?"
// @Param			offset				query	uint	false	"The offset of the first employee returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of employees to return. Defaults to 50."
func GetEmployees(c *gin.Context) {
	var filter EmployeeQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EmployeeListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Preload("Skills").Order("last_name ASC, first_name ASC")

	if filter.Name != "" {
		q = q.Where(
			models.DB.Where("first_name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name)).Or(
				models.DB.Where("last_name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name)),
			),
		)
	}

	if slices.Contains(setFields, "Location") {
		q = q.Where("location = ?", filter.Location)
	}

	if filter.JobTitleID != cp_uuid.Nil {
		q = q.Where("job_title_id = ?", filter.JobTitleID.UUID)
	}

	if filter.DepartmentID != cp_uuid.Nil {
		q = q.Where("department_id = ?", filter.DepartmentID.UUID)
	}

	if slices.Contains(setFields, "IncludeInCapacity") {
		q = q.Where("include_in_capacity = ?", filter.IncludeInCapacity)
	}

	if slices.Contains(setFields, "Active") {
		q = q.Where("active = ?", filter.Active)
	}

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	// The skill filter matches glob patterns against skill names, which
	// cannot be done in SQL. When it is set, pagination happens after
	// filtering in memory.
	if filter.Skill == "" {
		q = q.Offset(int(filter.Offset)).Limit(limit)
	}

	var employees []models.Employee
	err := q.Find(&employees).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EmployeeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeListResponse{
			Error: &e,
		})
		return
	}

	if filter.Skill != "" {
		matching := make([]models.Employee, 0, len(employees))
		for _, employee := range employees {
			for _, name := range employee.SkillNames() {
				if glob.Glob(filter.Skill, name) {
					matching = append(matching, employee)
					break
				}
			}
		}

		count = int64(len(matching))

		if int(filter.Offset) < len(matching) {
			matching = matching[filter.Offset:]
		} else {
			matching = nil
		}

		if limit >= 0 && limit < len(matching) {
			matching = matching[:limit]
		}

		employees = matching
	}

	data := make([]Employee, 0, len(employees))
	for _, employee := range employees {
		data = append(data, newEmployee(c, employee))
	}

	c.JSON(http.StatusOK, EmployeeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get employee
// @Description	Returns a specific employee
// @Tags			Employees
// @Produce		json
// @Success		200	{object}	EmployeeResponse
// @Failure		400	{object}	EmployeeResponse
// @Failure		404	{object}	EmployeeResponse
// @Failure		500	{object}	EmployeeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/employees/{id} [get]
func GetEmployee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	var employee models.Employee
	err = models.DB.Preload("Skills").First(&employee, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newEmployee(c, employee)
	c.JSON(http.StatusOK, EmployeeResponse{Data: &apiResource})
}

// @Summary		Update employee
// @Description	Updates an existing employee. Only values to be updated need to be specified.
// @Tags			Employees
// @Accept			json
// @Produce		json
// @Success		200			{object}	EmployeeResponse
// @Failure		400			{object}	EmployeeResponse
// @Failure		404			{object}	EmployeeResponse
// @Failure		500			{object}	EmployeeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			employee	body		EmployeeEditable	true	"Employee"
// @Router			/v1/employees/{id} [patch]
func UpdateEmployee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	var employee models.Employee
	err = models.DB.Preload("Skills").First(&employee, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EmployeeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	var data EmployeeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	// Skills are maintained through the association, not as a column
	updateSkills := slices.Contains(updateFields, any("SkillIDs"))
	if updateSkills {
		i := slices.Index(updateFields, any("SkillIDs"))
		updateFields = slices.Delete(updateFields, i, i+1)
	}

	if len(updateFields) > 0 {
		err = models.DB.WithContext(c).Model(&employee).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EmployeeResponse{
				Error: &e,
			})
			return
		}
	}

	if updateSkills {
		skills, err := loadSkills(data.SkillIDs)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EmployeeResponse{
				Error: &e,
			})
			return
		}

		err = models.DB.WithContext(c).Model(&employee).Association("Skills").Replace(skills)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EmployeeResponse{
				Error: &e,
			})
			return
		}

		employee.Skills = skills
	}

	apiResource := newEmployee(c, employee)
	c.JSON(http.StatusOK, EmployeeResponse{Data: &apiResource})
}

// @Summary		Delete employee
// @Description	Deletes an employee
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/employees/{id} [delete]
func DeleteEmployee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var employee models.Employee
	err = models.DB.First(&employee, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&employee).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
