package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgerror"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr  *httprouter.Router
	mws []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uid Generator) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(r.Context(), w, errorResponse{Message: "endpoint not found", Detail: "Not Found"}, http.StatusNotFound)
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(r.Context(), w, errorResponse{Message: "method not allowed", Detail: "Method Not Allowed"}, http.StatusMethodNotAllowed)
		}),
	}

	ro := &Router{
		hr: hr,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uid),
			middlewareLogging,
		},
	}

	ro.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, map[string]string{"message": "It Works!"}, http.StatusOK)
	}))

	ro.Handle(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, map[string]string{"message": "server is running well"}, http.StatusOK)
	}))

	return ro
}

// Use appends middleware to the existing middleware stack. It only affects
// routes registered afterwards.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.Handle(http.MethodGet, path, r.endpoint(h), mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	chain := make([]Middleware, 0, len(r.mws)+len(mws)+1)
	chain = append(chain, middlewareRoute(path))
	chain = append(chain, r.mws...)
	chain = append(chain, mws...)

	r.hr.Handler(method, path, Chain(h, chain...))
}

func (r *Router) endpoint(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			writeError(re.Context(), w, err)
			return
		}
		writeSuccess(re.Context(), w, resp)
	})
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// errorResponse carries the human message plus either the message again or
// the list of rejected fields under "detail".
type errorResponse struct {
	Message string `json:"message"`
	Detail  any    `json:"detail"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		slog.ErrorContext(ctx, "request failed", "error", err)
		writeJSON(ctx, w, errorResponse{Message: "Internal server error", Detail: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	// Business and validation errors are expected outcomes, not faults.
	if gerr.Type() == pkgerror.TypeServer {
		slog.ErrorContext(ctx, "request failed", "error", gerr.String())
	} else {
		slog.InfoContext(ctx, "request rejected", "type", gerr.Type().String(), "code", gerr.Code().String(), "error", gerr.Error())
	}

	resp := errorResponse{Message: gerr.Msg(), Detail: gerr.Msg()}
	if fields := gerr.Fields(); len(fields) > 0 {
		resp.Detail = fields
	}

	writeJSON(ctx, w, resp, gerr.StatusCode())
}

// writeSuccess encodes resp as the bare response body. Optional hooks on the
// payload control the status code and extra headers.
func writeSuccess(ctx context.Context, w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface {
		StatusCode() int
	}); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if hd, ok := resp.(interface {
		Header() http.Header
	}); ok {
		for key, values := range hd.Header() {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
	}

	writeJSON(ctx, w, resp, code)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, data any, code int) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "server: failed to encode data to json", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	//nolint:errcheck,gosec // client went away, nothing left to do
	w.Write(append(body, '\n'))
}
