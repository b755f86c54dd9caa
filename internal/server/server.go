package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Action string

type Method string

const (
	Data Action = "data"
	Api  Action = "api"
	Live Action = "live"

	GET  Method = "GET"
	POST Method = "POST"

	// RequestIDHeader carries the id assigned to every request.
	RequestIDHeader = "X-Request-Id"

	shutdownTimeout = 5 * time.Second
)

// Handler handles a request and returns the response payload and status code.
// A zero code means http.StatusOK.
type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Action Action
	Path   string
	Method Method
	Exec   Handler
}

func (r Route) pattern() string {
	if r.Path != "" {
		return fmt.Sprintf("/%s/%s", r.Action, r.Path)
	}
	return fmt.Sprintf("/%s", r.Action)
}

type Server struct {
	name    string
	port    int
	debug   bool
	limiter *rate.Limiter
	routes  []Route
	mounts  map[string]http.Handler
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:   name,
		port:   port,
		routes: make([]Route, 0),
		mounts: make(map[string]http.Handler),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// Limit allows at most rps requests per second with the given burst.
// A non-positive rps leaves the server unlimited.
func (s *Server) Limit(rps float64, burst int) *Server {
	if rps <= 0 {
		s.limiter = nil
		return s
	}
	if burst < 1 {
		burst = 1
	}
	s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	return s
}

// AddRoute adds the given route to the server
func (s *Server) AddRoute(method Method, action Action, path string, exec Handler) *Server {
	s.routes = append(s.routes, Route{
		Action: action,
		Path:   path,
		Method: method,
		Exec:   exec,
	})
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Mount serves a plain http handler under the given path.
func (s *Server) Mount(path string, handler http.Handler) *Server {
	s.mounts[path] = handler
	return s
}

// Handler builds the http handler for all the registered routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, route := range s.routes {
		mux.HandleFunc(route.pattern(), s.handle(route.Method, route.Exec))
	}
	for path, handler := range s.mounts {
		mux.Handle(path, handler)
	}
	return mux
}

func (s *Server) handle(method Method, handler Handler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.New().String()
		w.Header().Set(RequestIDHeader, id)
		w.Header().Set("Content-Type", "application/json")

		logger := log.With().
			Str("request", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		if s.debug {
			logger.Info().Str("remote-address", r.RemoteAddr).Msg("received request")
		}

		if s.limiter != nil && !s.limiter.Allow() {
			logger.Warn().Msg("rate limited")
			s.code(w, errorPayload(errors.New("too many requests")), http.StatusTooManyRequests)
			return
		}

		requestMethod := Method(r.Method)
		switch requestMethod {
		case method:
			b, code, err := handler(r)
			if err != nil {
				if code == 0 || code == http.StatusOK {
					code = http.StatusInternalServerError
				}
				logger.Error().Err(err).Int("code", code).Msg("error for http request")
				s.code(w, errorPayload(err), code)
			} else if code != 0 && code != http.StatusOK {
				s.code(w, b, code)
			} else {
				s.respond(w, b)
			}
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}

		logger.Debug().
			Float64("duration", time.Since(start).Seconds()).
			Msg("completed request")
	}
}

// Run starts the server and blocks until the context is done or the server fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("server", s.name).Int("port", s.port).Msg("starting server")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("could not start server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Str("server", s.name).Msg("shutting down server")
	shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}
	return nil
}

func (s *Server) code(w http.ResponseWriter, b []byte, code int) {
	w.WriteHeader(code)
	s.respond(w, b)
}

func (s *Server) respond(w http.ResponseWriter, b []byte) {
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func errorPayload(err error) []byte {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	return b
}

// LiveRoute answers to liveness checks.
func LiveRoute() Route {
	return Route{
		Action: Live,
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// ReadJson decodes the request body into v.
// An empty body leaves v untouched.
func ReadJson(r *http.Request, debug bool, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if debug {
		log.Info().
			Str("url", fmt.Sprintf("%+v", r.URL)).
			Str("request", r.RequestURI).
			Str("remote-address", r.RemoteAddr).
			Str("host", r.Host).
			Str("method", r.Method).
			Str("body", string(body)).
			Msg("received payload")
	}
	if len(body) > 0 {
		err = json.Unmarshal(body, v)
		if err != nil {
			return err
		}
	}
	return nil
}
