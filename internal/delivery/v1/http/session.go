package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SessionCookie — имя cookie с идентификатором сессии покупателя
const SessionCookie = "frag_ave_session"

type sessionKey struct{}

// sessionMiddleware гарантирует наличие идентификатора сессии. Отсутствующий
// или некорректный идентификатор заменяется новым, и cookie выставляется заново.
func sessionMiddleware(newID func() string, secure bool, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string
			if c, err := r.Cookie(SessionCookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					sid = c.Value
				}
			}

			if sid == "" {
				sid = newID()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sid,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sid)))
		})
	}
}

// sessionID возвращает идентификатор, положенный в контекст sessionMiddleware.
func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionKey{}).(string)
	return sid
}
