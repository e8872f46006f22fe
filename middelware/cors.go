package middelware

import (
	"net/http"
	"strconv"

	"reading-app-backend/models"

	"github.com/gin-gonic/gin"
)

// allowAllMethods is sent on preflight responses when every method is allowed
const allowAllMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// preflightMaxAge is how long browsers may cache a preflight result, in seconds
const preflightMaxAge = 600

// CORSPolicy describes which cross-origin requests are admitted
type CORSPolicy struct {
	AllowOrigins     []string
	AllowCredentials bool
}

// NewCORSPolicy builds the application policy from the settings.
// Credentials are always allowed, as are all methods and headers.
func NewCORSPolicy(settings *models.Settings) CORSPolicy {
	return CORSPolicy{
		AllowOrigins:     settings.CORSOrigins(),
		AllowCredentials: true,
	}
}

// CORSMiddleware provides CORS handling
type CORSMiddleware struct {
	policy   CORSPolicy
	allowAll bool
	allowed  map[string]struct{}
}

// NewCORSMiddleware creates a new CORS middleware
func NewCORSMiddleware(policy CORSPolicy) *CORSMiddleware {
	m := &CORSMiddleware{
		policy:  policy,
		allowed: make(map[string]struct{}, len(policy.AllowOrigins)),
	}
	for _, origin := range policy.AllowOrigins {
		if origin == models.WildcardOrigin {
			m.allowAll = true
		}
		m.allowed[origin] = struct{}{}
	}
	return m
}

// CORS returns a gin.HandlerFunc for handling CORS
func (m *CORSMiddleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodOptions && c.Request.Header.Get("Access-Control-Request-Method") != "" {
			m.preflight(c, origin)
			return
		}

		m.simple(c, origin)
		c.Next()
	}
}

func (m *CORSMiddleware) preflight(c *gin.Context, origin string) {
	if !m.isOriginAllowed(origin) {
		c.Header("Vary", "Origin")
		c.String(http.StatusBadRequest, "Disallowed CORS origin")
		c.Abort()
		return
	}

	if m.allowAll && !m.policy.AllowCredentials {
		c.Header("Access-Control-Allow-Origin", models.WildcardOrigin)
	} else {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
	}
	if m.policy.AllowCredentials {
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	c.Header("Access-Control-Allow-Methods", allowAllMethods)
	if requested := c.Request.Header.Get("Access-Control-Request-Headers"); requested != "" {
		c.Header("Access-Control-Allow-Headers", requested)
	}
	c.Header("Access-Control-Max-Age", strconv.Itoa(preflightMaxAge))

	c.String(http.StatusOK, "OK")
	c.Abort()
}

func (m *CORSMiddleware) simple(c *gin.Context, origin string) {
	switch {
	case m.allowAll && c.Request.Header.Get("Cookie") == "":
		c.Header("Access-Control-Allow-Origin", models.WildcardOrigin)
	case m.isOriginAllowed(origin):
		// credentialed requests need the concrete origin
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
	default:
		c.Header("Vary", "Origin")
	}

	if m.policy.AllowCredentials {
		c.Header("Access-Control-Allow-Credentials", "true")
	}
}

// isOriginAllowed checks if the origin is in the allowed list
func (m *CORSMiddleware) isOriginAllowed(origin string) bool {
	if m.allowAll {
		return true
	}
	_, ok := m.allowed[origin]
	return ok
}
