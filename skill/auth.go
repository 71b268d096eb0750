package skill

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/internal/common/httpx"
)

// authenticate guards the skill endpoints. The dialog manager authenticates
// with basic auth as user "cvi" and the configured API key, or with a signed
// bearer token when the bearer scheme is configured. Debug mode and the
// "none" scheme disable authentication.
func (s *Skill) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := config.Config()
		if cfg.Debug || cfg.Auth.Scheme == "none" {
			next.ServeHTTP(w, r)
			return
		}

		var err *httpx.Error
		switch cfg.Auth.Scheme {
		case "bearer":
			err = checkBearer(r, cfg.Auth.Secret)
		default:
			err = checkBasic(r, cfg.Auth.User, cfg.Auth.Key)
		}
		if err != nil {
			log.Ctx(r.Context()).Warn().Str("text", err.Text).Msg("authentication failed")
			if cfg.Auth.Scheme != "bearer" {
				w.Header().Set("WWW-Authenticate", `Basic realm="skill"`)
			}
			err.Send(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func checkBasic(r *http.Request, user, key string) *httpx.Error {
	reqUser, reqKey, ok := r.BasicAuth()
	if !ok {
		return httpx.ErrUnAuthorized("missing credentials")
	}
	userOK := subtle.ConstantTimeCompare([]byte(reqUser), []byte(user)) == 1
	keyOK := subtle.ConstantTimeCompare([]byte(reqKey), []byte(key)) == 1
	if !userOK || !keyOK {
		return httpx.ErrUnAuthorized("incorrect user name or password")
	}
	return nil
}

func checkBearer(r *http.Request, secret string) *httpx.Error {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return httpx.ErrUnAuthorized("missing bearer token")
	}
	_, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return httpx.ErrUnAuthorized("invalid bearer token")
	}
	return nil
}
