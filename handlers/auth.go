package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
	"github.com/alfon96/askenzo-api/utils"
)

const (
	identityKey       = "identity"
	currentTouristKey = "currentTourist"
	currentHostKey    = "currentHost"
)

// Identity is the authenticated subject extracted from a bearer token.
type Identity struct {
	UserID uint
	Role   models.Role
}

// Authorizer evaluates bearer credentials against a required role set. Hosts
// and tourists are additionally resolved to their persisted record, so a
// deleted or deactivated account is rejected even while its token is still
// formally valid. Evaluated on every request; nothing is cached.
type Authorizer struct {
	Tourists services.TouristService
	Hosts    services.HostService
}

// RequireRoles is the evaluator as gin middleware. The three route variants
// are admin-only, host-or-tourist and any-of-three, each a different role set
// over the same check.
func (a *Authorizer) RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.VerifyJWT(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Incorrect token"})
			return
		}

		roleStr, _ := claims["role"].(string)
		role := models.Role(roleStr)
		if !roleIn(role, allowed) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized user."})
			return
		}

		// Numeric claims come back as float64 after JSON decoding.
		rawID, _ := claims["user_id"].(float64)
		id := Identity{UserID: uint(rawID), Role: role}

		switch role {
		case models.RoleTourist:
			tourist, ok := a.resolveTourist(c, id.UserID)
			if !ok {
				return
			}
			c.Set(currentTouristKey, tourist)
		case models.RoleHost:
			host, ok := a.resolveHost(c, id.UserID)
			if !ok {
				return
			}
			c.Set(currentHostKey, host)
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

func (a *Authorizer) resolveTourist(c *gin.Context, id uint) (*models.TouristUser, bool) {
	tourist, err := a.Tourists.GetByID(id)
	if err != nil {
		respondDataError(c, err, "Tourist not found")
		c.Abort()
		return nil, false
	}
	if tourist.StateID != models.StateActive {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "This user has been deactivated."})
		return nil, false
	}
	return tourist, true
}

func (a *Authorizer) resolveHost(c *gin.Context, id uint) (*models.HostUser, bool) {
	host, err := a.Hosts.GetByID(id)
	if err != nil {
		respondDataError(c, err, "Host not found")
		c.Abort()
		return nil, false
	}
	if host.StateID != models.StateActive {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "This user has been deactivated."})
		return nil, false
	}
	return host, true
}

func roleIn(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func identityFromContext(c *gin.Context) Identity {
	id, _ := c.MustGet(identityKey).(Identity)
	return id
}

func touristFromContext(c *gin.Context) *models.TouristUser {
	t, _ := c.MustGet(currentTouristKey).(*models.TouristUser)
	return t
}

func hostFromContext(c *gin.Context) *models.HostUser {
	h, _ := c.MustGet(currentHostKey).(*models.HostUser)
	return h
}
