package router

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/feed-report-bot/pkg/apiErrors"
)

type Middleware = func(http.Handler) http.Handler

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // Middlewares específicos da rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o router com respostas de erro no formato da API
func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{"method": r.Method})
	})

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return *router
}

// Group prefixa o caminho de cada rota e antepõe os middlewares do grupo
func Group(prefix string, middlewares []Middleware, routes ...Route) []Route {
	prefix = strings.TrimSuffix(prefix, "/")

	grouped := make([]Route, 0, len(routes))
	for _, route := range routes {
		stack := make([]Middleware, 0, len(middlewares)+len(route.Middlewares))
		stack = append(stack, middlewares...)
		stack = append(stack, route.Middlewares...)

		route.Path = prefix + "/" + strings.TrimPrefix(route.Path, "/")
		route.Middlewares = stack
		grouped = append(grouped, route)
	}

	return grouped
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, chain(route.Handler, route.Middlewares))
	}
}

// o primeiro middleware da lista é o mais externo
func chain(handler http.Handler, middlewares []Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
