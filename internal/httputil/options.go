package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func allow(c *gin.Context, verbs ...string) {
	c.Header("allow", strings.Join(verbs, ", "))
	c.Status(http.StatusNoContent)
}

// OptionsGet answers for read-only endpoints, like the planning views.
func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

// OptionsGetPost answers for resource collections.
func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

// OptionsGetPatchDelete answers for a single resource.
func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}
