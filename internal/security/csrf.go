package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
)

const csrfTokenBytes = 32

// CsrfToken 取得目前session的CSRF token, 不存在就簽發一個
func CsrfToken(sess *session.Session) (string, error) {
	if token := sess.GetString(constants.SessionCsrfTokenKey); token != "" {
		return token, nil
	}

	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}

	token := hex.EncodeToString(buf)
	if err := sess.Set(constants.SessionCsrfTokenKey, token); err != nil {
		return "", err
	}
	return token, nil
}

// ValidateCsrf 以常數時間比較驗證表單送來的token
func ValidateCsrf(sess *session.Session, token string) bool {
	stored := sess.GetString(constants.SessionCsrfTokenKey)
	if stored == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}
