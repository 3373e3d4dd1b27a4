package v1

import (
	"fmt"
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// referenceModel is the set of resources that only carry a name and a
// description. They all share the same controller.
type referenceModel interface {
	models.Department | models.JobTitle | models.Skill | models.ProjectType | models.CommercialStatus
}

// ReferenceEditable contains the fields of a reference resource that
// clients can set.
type ReferenceEditable struct {
	Name        string `json:"name" example:"Engineering" default:""`                // Name of the resource, must be unique
	Description string `json:"description" example:"Product engineering" default:""` // Description of the resource
}

type ReferenceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/departments/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The resource itself
}

// Reference is the API representation of a reference resource.
type Reference struct {
	models.DefaultModel
	ReferenceEditable
	Links ReferenceLinks `json:"links"`
}

type ReferenceResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Reference `json:"data"`                                                          // The resource
}

type ReferenceListResponse struct {
	Data       []Reference `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReferenceCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReferenceResponse `json:"data"`                                                          // List of created resources
}

func (t *ReferenceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ReferenceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReferenceQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By the description
	Search      string `form:"search" filterField:"false"`      // Search for this text in name and description
	Active      bool   `form:"active" filterField:"false"`      // Is the resource in active use?
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first resource returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of resources to return. Defaults to 50.
}

// referenceController implements CRUD for one reference resource. The
// conversion closures bridge between the shared API representation and the
// concrete model type.
type referenceController[M referenceModel] struct {
	resource string // URL path segment of the resource, e.g. "departments"
	model    func(ReferenceEditable) M
	editable func(M) ReferenceEditable
	meta     func(M) models.DefaultModel
}

func (ctl referenceController[M]) register(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ctl.list)
		r.POST("", ctl.create)
	}
	{
		r.OPTIONS("/:id", ctl.optionsDetail)
		r.GET("/:id", ctl.get)
		r.PATCH("/:id", ctl.update)
		r.DELETE("/:id", ctl.delete)
	}
}

// newReference returns the API representation of the resource.
func (ctl referenceController[M]) newReference(c *gin.Context, model M) Reference {
	url := c.GetString(string(models.ContextURL))
	meta := ctl.meta(model)

	return Reference{
		DefaultModel:      meta,
		ReferenceEditable: ctl.editable(model),
		Links: ReferenceLinks{
			Self: fmt.Sprintf("%s/v1/%s/%s", url, ctl.resource, meta.ID),
		},
	}
}

func (ctl referenceController[M]) optionsDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var resource M
	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func (ctl referenceController[M]) create(c *gin.Context) {
	var editables []ReferenceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReferenceCreateResponse{}

	for _, editable := range editables {
		resource := ctl.model(editable)
		err = models.DB.WithContext(c).Create(&resource).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := ctl.newReference(c, resource)
		r.Data = append(r.Data, ReferenceResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

func (ctl referenceController[M]) list(c *gin.Context) {
	var filter ReferenceQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReferenceListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")
	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Description, filter.Search)

	if slices.Contains(setFields, "Active") {
		q = q.Where("active = ?", filter.Active)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 resources and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var resources []M
	err := q.Find(&resources).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReferenceListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Reference, 0, len(resources))
	for _, resource := range resources {
		data = append(data, ctl.newReference(c, resource))
	}

	c.JSON(http.StatusOK, ReferenceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func (ctl referenceController[M]) get(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceResponse{
			Error: &e,
		})
		return
	}

	var resource M
	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceResponse{
			Error: &e,
		})
		return
	}

	apiResource := ctl.newReference(c, resource)
	c.JSON(http.StatusOK, ReferenceResponse{Data: &apiResource})
}

func (ctl referenceController[M]) update(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceResponse{
			Error: &e,
		})
		return
	}

	var resource M
	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ReferenceEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data ReferenceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.WithContext(c).Model(&resource).Select("", updateFields...).Updates(ctl.model(data)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceResponse{
			Error: &e,
		})
		return
	}

	apiResource := ctl.newReference(c, resource)
	c.JSON(http.StatusOK, ReferenceResponse{Data: &apiResource})
}

func (ctl referenceController[M]) delete(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var resource M
	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func RegisterDepartmentRoutes(r *gin.RouterGroup) {
	referenceController[models.Department]{
		resource: "departments",
		model: func(e ReferenceEditable) models.Department {
			return models.Department{Name: e.Name, Description: e.Description}
		},
		editable: func(m models.Department) ReferenceEditable {
			return ReferenceEditable{Name: m.Name, Description: m.Description}
		},
		meta: func(m models.Department) models.DefaultModel { return m.DefaultModel },
	}.register(r)
}

func RegisterJobTitleRoutes(r *gin.RouterGroup) {
	referenceController[models.JobTitle]{
		resource: "job-titles",
		model: func(e ReferenceEditable) models.JobTitle {
			return models.JobTitle{Name: e.Name, Description: e.Description}
		},
		editable: func(m models.JobTitle) ReferenceEditable {
			return ReferenceEditable{Name: m.Name, Description: m.Description}
		},
		meta: func(m models.JobTitle) models.DefaultModel { return m.DefaultModel },
	}.register(r)
}

func RegisterSkillRoutes(r *gin.RouterGroup) {
	referenceController[models.Skill]{
		resource: "skills",
		model: func(e ReferenceEditable) models.Skill {
			return models.Skill{Name: e.Name, Description: e.Description}
		},
		editable: func(m models.Skill) ReferenceEditable {
			return ReferenceEditable{Name: m.Name, Description: m.Description}
		},
		meta: func(m models.Skill) models.DefaultModel { return m.DefaultModel },
	}.register(r)
}

func RegisterProjectTypeRoutes(r *gin.RouterGroup) {
	referenceController[models.ProjectType]{
		resource: "project-types",
		model: func(e ReferenceEditable) models.ProjectType {
			return models.ProjectType{Name: e.Name, Description: e.Description}
		},
		editable: func(m models.ProjectType) ReferenceEditable {
			return ReferenceEditable{Name: m.Name, Description: m.Description}
		},
		meta: func(m models.ProjectType) models.DefaultModel { return m.DefaultModel },
	}.register(r)
}

func RegisterCommercialStatusRoutes(r *gin.RouterGroup) {
	referenceController[models.CommercialStatus]{
		resource: "commercial-statuses",
		model: func(e ReferenceEditable) models.CommercialStatus {
			return models.CommercialStatus{Name: e.Name, Description: e.Description}
		},
		editable: func(m models.CommercialStatus) ReferenceEditable {
			return ReferenceEditable{Name: m.Name, Description: m.Description}
		},
		meta: func(m models.CommercialStatus) models.DefaultModel { return m.DefaultModel },
	}.register(r)
}
