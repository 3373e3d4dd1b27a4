package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	cp_uuid "github.com/crewplan/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterProjectRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsProjects)
		r.GET("", GetProjects)
		r.POST("", CreateProjects)
	}
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", GetProject)
		r.PATCH("/:id", UpdateProject)
		r.DELETE("/:id", DeleteProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjects(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create projects
// @Description	Creates new projects
// @Tags			Projects
// @Produce		json
// @Success		201			{object}	ProjectCreateResponse
// @Failure		400			{object}	ProjectCreateResponse
// @Failure		404			{object}	ProjectCreateResponse
// @Failure		500			{object}	ProjectCreateResponse
// @Param			projects	body		[]ProjectEditable	true	"Projects"
// @Router			/v1/projects [post]
func CreateProjects(c *gin.Context) {
	var editables []ProjectEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProjectCreateResponse{}

	for _, editable := range editables {
		project := editable.model()
		err = models.DB.WithContext(c).Create(&project).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newProject(c, project)
		r.Data = append(r.Data, ProjectResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get projects
// @Description	Returns a list of projects
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		400	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Router			/v1/projects [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			description	query	string	false	"Filter by description"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			customer	query	string	false	"Filter by customer ID"
// @Param			phase		query	string	false	"Filter by phase"
// @Param			status		query	string	false	"Filter by status"
// @Param			priority	query	string	false	"Filter by priority"
// @Param			health		query	string	false	"Filter by health"
// @Param			active		query	bool	false	"Is the project in active use?"
// @Param			offset		query	uint	false	"The offset of the first project returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of projects to return. Defaults to 50."
func GetProjects(c *gin.Context) {
	var filter ProjectQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProjectListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("date(start_date) ASC, name ASC")
	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Description, filter.Search)

	if filter.CustomerID != cp_uuid.Nil {
		q = q.Where("customer_id = ?", filter.CustomerID.UUID)
	}

	if slices.Contains(setFields, "Phase") {
		q = q.Where("phase = ?", filter.Phase)
	}

	if slices.Contains(setFields, "Status") {
		q = q.Where("status = ?", filter.Status)
	}

	if slices.Contains(setFields, "Priority") {
		q = q.Where("priority = ?", filter.Priority)
	}

	if slices.Contains(setFields, "Health") {
		q = q.Where("health = ?", filter.Health)
	}

	if slices.Contains(setFields, "Active") {
		q = q.Where("active = ?", filter.Active)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var projects []models.Project
	err := q.Find(&projects).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Project, 0, len(projects))
	for _, project := range projects {
		data = append(data, newProject(c, project))
	}

	c.JSON(http.StatusOK, ProjectListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [get]
func GetProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &apiResource})
}

// @Summary		Update project
// @Description	Updates an existing project. Only values to be updated need to be specified.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects/{id} [patch]
func UpdateProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProjectEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	var data ProjectEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.WithContext(c).Model(&project).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &apiResource})
}

// @Summary		Delete project
// @Description	Deletes a project
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&project).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
