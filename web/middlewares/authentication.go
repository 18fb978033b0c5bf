package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/directory"
	"greenwood.com/sis/web/common"
)

// AdminPassword guards mutating admin routes with the shared admin secret
// carried in the X-Admin-Password header. There are no sessions or tokens;
// every protected request presents the password.
func AdminPassword(d *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader("X-Admin-Password")
		if password == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse("X-Admin-Password header is required"))
			return
		}

		ok, err := d.VerifyAdminPassword(password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				common.NewErrorResponse(err.Error()))
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse("invalid admin password"))
			return
		}

		c.Next()
	}
}
