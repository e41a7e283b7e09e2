package middleware

import (
	"errors"
	"net/http"
	"strings"

	"liquidation_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
	JWTClaimsKey  = "jwt_claims"
)

// JWTConfig holds configuration for JWTAuth.
type JWTConfig struct {
	Secret string
	// SkipPaths are served without a token.
	SkipPaths []string
	Logger    *zap.Logger
}

// JWTAuth checks HS256 bearer tokens signed with Secret. The validated
// claims are stored under JWTClaimsKey.
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	secret := []byte(cfg.Secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		for _, p := range cfg.SkipPaths {
			if c.Request.URL.Path == p {
				c.Next()
				return
			}
		}

		header := c.GetHeader(AuthHeaderKey)
		if !strings.HasPrefix(header, BearerPrefix) || strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix)) == "" {
			unauthorized(c, "Missing or malformed authorization header")
			return
		}

		claims := jwt.MapClaims{}
		_, err := parser.ParseWithClaims(strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix)), claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil {
			log.Info("token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if errors.Is(err, jwt.ErrTokenExpired) {
				unauthorized(c, "Token expired")
				return
			}
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
