package curve

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/drakos74/curve-fit/internal/server"
)

// Routes exposes the service over http.
//
//	POST /api/fit      fits, stores and returns the submitted points
//	GET  /api/points   returns all the stored points
//	GET  /api/defaults returns the initial request
func (s *Service) Routes(debug bool) []server.Route {
	return []server.Route{
		{
			Action: server.Api,
			Path:   "fit",
			Method: server.POST,
			Exec:   s.fit(debug),
		},
		{
			Action: server.Api,
			Path:   "points",
			Method: server.GET,
			Exec:   s.points,
		},
		{
			Action: server.Api,
			Path:   "defaults",
			Method: server.GET,
			Exec:   defaults,
		},
	}
}

func (s *Service) fit(debug bool) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		var request Request
		if err := server.ReadJson(r, debug, &request); err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("could not read request: %w", err)
		}
		response, err := s.Submit(r.Context(), request)
		if IsFitError(err) {
			return nil, http.StatusUnprocessableEntity, err
		} else if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return encode(response)
	}
}

func (s *Service) points(r *http.Request) ([]byte, int, error) {
	return encode(s.History(r.Context()))
}

func defaults(r *http.Request) ([]byte, int, error) {
	return encode(Defaults())
}

func encode(v interface{}) ([]byte, int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not encode response: %w", err)
	}
	return b, http.StatusOK, nil
}
