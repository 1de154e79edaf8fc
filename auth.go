package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminPasswordHeader = "X-Admin-Password"

// dummyHash is a pre-computed bcrypt hash used when no admin hash is
// configured. Running bcrypt against it keeps response time constant.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// adminMiddleware gates admin routes on the X-Admin-Password header, compared
// against the configured bcrypt hash. The secret is opaque to the API: there
// are no sessions, every admin request carries it.
func (h *Handler) adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader(adminPasswordHeader)

		hashToCheck := h.adminPasswordHash
		if len(hashToCheck) == 0 {
			hashToCheck = dummyHash
		}
		compareErr := bcrypt.CompareHashAndPassword(hashToCheck, []byte(password))

		if len(h.adminPasswordHash) == 0 || password == "" || compareErr != nil {
			apiError(c, http.StatusUnauthorized, "invalid admin password")
			c.Abort()
			return
		}
		c.Next()
	}
}

// loginByName looks a profile up by its unique name.
// GET /api/auth/user?name=... (public).
func (h *Handler) loginByName(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}

	u, err := h.store.GetUserByName(c.Request.Context(), name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
