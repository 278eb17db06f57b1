package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/eatupnow/eatupnow-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Subject kinds carried in tokens. Delivery agents live in a separate
// identity space from users.
const (
	SubjectUser  = "user"
	SubjectAgent = "agent"
)

// Token types
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

type Claims struct {
	SubjectID uint        `json:"subject_id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Kind      string      `json:"kind"`
	TokenType string      `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Authenticator issues and validates JWTs. It is constructed at startup
// from configuration and injected into handlers.
type Authenticator struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthenticator(secret string, accessTTL, refreshTTL time.Duration) *Authenticator {
	return &Authenticator{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair creates a signed access+refresh token pair for a subject.
func (a *Authenticator) IssuePair(id uint, email string, role models.Role, kind string) (*TokenPair, error) {
	access, err := a.sign(id, email, role, kind, TokenAccess, a.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := a.sign(id, email, role, kind, TokenRefresh, a.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func (a *Authenticator) sign(id uint, email string, role models.Role, kind, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		SubjectID: id,
		Email:     email,
		Role:      role,
		Kind:      kind,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "eatupnow-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Parse validates a token string and returns its claims.
func (a *Authenticator) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// AuthRequired validates the bearer access token and injects the caller
// identity into the request context.
func (a *Authenticator) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		claims, err := a.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || claims.TokenType != TokenAccess {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("subjectID", claims.SubjectID)
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Set("kind", claims.Kind)
		c.Next()
	}
}

// RoleRequired enforces that the caller holds one of the allowed roles.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole := GetRole(c)
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

// UserRequired enforces that the caller authenticated as a user account.
// Agent IDs live in their own table, so letting an agent token onto
// user-identity routes would alias it onto an unrelated user.
func UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if kind, _ := c.Get("kind"); kind != SubjectUser {
			c.JSON(http.StatusForbidden, gin.H{"error": "User account required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AgentRequired enforces that the caller authenticated as a delivery agent.
func AgentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if kind, _ := c.Get("kind"); kind != SubjectAgent {
			c.JSON(http.StatusForbidden, gin.H{"error": "Delivery agent account required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetSubjectID extracts the caller's user or agent ID from context
func GetSubjectID(c *gin.Context) uint {
	val, _ := c.Get("subjectID")
	id, _ := val.(uint)
	return id
}

// GetRole extracts the caller role from context
func GetRole(c *gin.Context) models.Role {
	val, _ := c.Get("role")
	role, _ := val.(string)
	return models.Role(role)
}
