package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/services"
	"rootroutes-service/utils"
)

const (
	identityKey   = "identity"
	userKey       = "currentUser"
	requestIDKey  = "requestId"
	requestHeader = "X-Request-ID"
)

type AuthMiddleware struct {
	tokens      *utils.TokenManager
	userService services.UserService
	responder   *Responder
}

func NewAuthMiddleware(tokens *utils.TokenManager, userService services.UserService, responder *Responder) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, userService: userService, responder: responder}
}

// RequireAuth rejects the request unless it carries a valid bearer token of
// a user that still exists.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.authenticate(c)
		if err != nil {
			m.responder.Error(c, err)
			return
		}
		setUser(c, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			m.responder.Error(c, error2.NewAuthenticationError("Authentication required"))
			return
		}
		if !identity.IsAdmin() {
			m.responder.Error(c, error2.NewAuthorizationError("Admin access required"))
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is sent and lets the
// request through anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if user, err := m.authenticate(c); err == nil {
				setUser(c, user)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*domain.User, error) {
	token, err := utils.BearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := m.userService.FindUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if error2.StatusCode(err) == http.StatusNotFound {
			return nil, error2.NewAuthenticationError("User no longer exists")
		}
		return nil, err
	}
	return user, nil
}

func setUser(c *gin.Context, user *domain.User) {
	c.Set(userKey, user)
	c.Set(identityKey, user.Identity())
}

func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

func currentUser(c *gin.Context) (*domain.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

func ExtractTraceInfoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestID reuses an incoming X-Request-ID or mints one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestHeader, id)
		c.Next()
	}
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"requestId": c.GetString(requestIDKey),
			"clientIp":  c.ClientIP(),
		}).Info("request")
	}
}
