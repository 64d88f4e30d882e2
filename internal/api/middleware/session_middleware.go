package middleware

import (
	"context"
	"net/http"
	"os"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/RoyceAzure/lab/sellnow/internal/util"
	"github.com/rs/zerolog"
)

// SessionMiddleware 請求前載入session, 請求後保存
// cookie只放session id, 內容都在store
// session id在載入時就確定, cookie要在handler寫出response前設好
// 被銷毀的session只刪store資料, 殘留的cookie下次載入時會拿到全新session
func SessionMiddleware(manager *session.Manager, logger *zerolog.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
				sessionID = cookie.Value
			}

			sess, err := manager.Load(r.Context(), sessionID)
			if err != nil {
				logger.Error().Err(err).Msg("failed to load session")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if sess.IsNew() {
				http.SetCookie(w, &http.Cookie{
					Name:     constants.SessionCookieName,
					Value:    sess.ID(),
					Path:     "/",
					MaxAge:   int(manager.TTL().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), constants.SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))

			if err := manager.Save(r.Context(), sess); err != nil {
				logger.Error().Err(err).
					Str("request_id", util.GetRequestIDFromContext(r.Context())).
					Msg("failed to save session")
			}
		})
	}
}
