package handler

import (
	"net/http"
	"net/url"

	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/RoyceAzure/lab/sellnow/internal/security"
	"github.com/RoyceAzure/lab/sellnow/internal/serr"
	"github.com/RoyceAzure/lab/sellnow/internal/util"
)

// 表單欄位名
const (
	csrfFormField = "csrf_token"
)

func sessionOf(r *http.Request) *session.Session {
	return util.GetSessionFromContext(r.Context())
}

// pageData 組出模板共用的基本資料
func pageData(sess *session.Session, authenticated bool) map[string]any {
	data := map[string]any{
		"IsAuthenticated": authenticated,
	}
	if sess != nil {
		if token, err := security.CsrfToken(sess); err == nil {
			data["CsrfToken"] = token
		}
	}
	return data
}

// csrfValid 驗證表單token, 失敗時回403純文字
func csrfValid(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	if security.ValidateCsrf(sess, r.PostFormValue(csrfFormField)) {
		return true
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte("Invalid CSRF token"))
	return false
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusFound)
}

func redirectWithError(w http.ResponseWriter, r *http.Request, to, message string) {
	redirect(w, r, to+"?error="+url.QueryEscape(message))
}

// errorMessageOf 把服務層錯誤壓成一行可顯示的訊息
func errorMessageOf(err error) string {
	if fields := serr.FieldsOf(err); len(fields) > 0 {
		for _, msg := range fields {
			return msg
		}
	}
	return err.Error()
}
