package cookie

import (
	"net/http"
	"time"

	"villanest/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// Jar writes the auth cookie pair with the configured domain and SameSite policy.
type Jar struct {
	cfg config.CookieConfig
}

func NewJar(cfg config.Config) *Jar {
	return &Jar{cfg: cfg.Cookie}
}

func (j *Jar) SetTokens(c *gin.Context, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSiteMode(j.cfg.SameSite))
	j.set(c, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	j.set(c, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func (j *Jar) Clear(c *gin.Context) {
	c.SetSameSite(sameSiteMode(j.cfg.SameSite))
	j.set(c, AccessTokenCookieName, "", -1)
	j.set(c, RefreshTokenCookieName, "", -1)
}

func (j *Jar) set(c *gin.Context, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", j.cfg.Domain, j.cfg.Secure, true)
}

func AccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
