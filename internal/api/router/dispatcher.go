package router

import (
	"net/http"
	"strings"
)

// ANY 表示不限HTTP方法
const ANY = "ANY"

// Params 路徑參數, 例如 /{username} 配對到的值
type Params map[string]string

// HandlerFunc 路由處理函式, 路徑參數直接傳入
type HandlerFunc func(w http.ResponseWriter, r *http.Request, p Params)

type route struct {
	method   string
	segments []string
	handler  HandlerFunc
}

// Dispatcher 依註冊順序線性比對的路由器
// 先註冊者先配對, 靜態路由必須排在動態路由之前
// 例如 /products 要先於 /{username}, 否則會被當成賣家名稱
type Dispatcher struct {
	routes          []route
	notFoundHandler http.HandlerFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		notFoundHandler: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("404 - Page Not Found"))
		},
	}
}

func (d *Dispatcher) Get(pattern string, handler HandlerFunc) {
	d.Handle(http.MethodGet, pattern, handler)
}

func (d *Dispatcher) Post(pattern string, handler HandlerFunc) {
	d.Handle(http.MethodPost, pattern, handler)
}

func (d *Dispatcher) Any(pattern string, handler HandlerFunc) {
	d.Handle(ANY, pattern, handler)
}

func (d *Dispatcher) Handle(method, pattern string, handler HandlerFunc) {
	d.routes = append(d.routes, route{
		method:   method,
		segments: splitPath(pattern),
		handler:  handler,
	})
}

// SetNotFound 覆寫預設404行為
func (d *Dispatcher) SetNotFound(handler http.HandlerFunc) {
	d.notFoundHandler = handler
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segments := splitPath(r.URL.Path)

	for _, rt := range d.routes {
		if rt.method != ANY && rt.method != r.Method {
			continue
		}
		params, ok := match(rt.segments, segments)
		if !ok {
			continue
		}
		rt.handler(w, r, params)
		return
	}

	d.notFoundHandler(w, r)
}

// match 逐段比對, {name}配對單一非空segment
func match(patternSegments, pathSegments []string) (Params, bool) {
	if len(patternSegments) != len(pathSegments) {
		return nil, false
	}

	params := Params{}
	for i, seg := range patternSegments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if pathSegments[i] == "" {
				return nil, false
			}
			params[seg[1:len(seg)-1]] = pathSegments[i]
			continue
		}
		if seg != pathSegments[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
