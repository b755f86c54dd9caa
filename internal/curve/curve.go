package curve

import (
	"context"
	"errors"
	"time"

	"github.com/drakos74/curve-fit/internal/math"
	"github.com/drakos74/curve-fit/internal/metrics"
	"github.com/drakos74/curve-fit/internal/model"
	"github.com/drakos74/curve-fit/internal/storage"
	"github.com/rs/zerolog/log"
)

// Request is a fit request as submitted by the user.
type Request struct {
	Points    []model.Sample `json:"points"`
	CurveType string         `json:"curveType"`
}

// Response is the outcome of a submitted fit, together with everything stored so far.
type Response struct {
	FittedEquation string         `json:"fittedEquation"`
	CurveType      string         `json:"curveType"`
	Points         []model.Sample `json:"points"`
	DatabaseData   []model.Sample `json:"databaseData"`
	Degree         model.Degree   `json:"degree"`
	Coefficients   []float64      `json:"coefficients"`
	RSquared       float64        `json:"rSquared"`
}

// Service resolves the curve type, fits the points and keeps track of them in the storage.
type Service struct {
	gateway storage.Gateway
}

// New creates a new curve service on top of the given storage.
func New(gateway storage.Gateway) *Service {
	return &Service{gateway: gateway}
}

// Defaults returns the request the page starts with.
func Defaults() Request {
	return Request{
		Points:    []model.Sample{{}, {}},
		CurveType: string(model.LinearCurve),
	}
}

// Process fits the samples for the given curve type.
// An unknown curve type gives back an empty result and no error.
func (s *Service) Process(curveType string, samples []model.Sample) (model.FitResult, error) {
	degree, err := model.ParseCurveType(curveType)
	if err != nil {
		log.Debug().Str("curve", curveType).Err(err).Msg("skipping fit")
		metrics.Observer.Fit("unknown", metrics.Skipped, 0)
		return model.FitResult{}, nil
	}

	start := time.Now()
	result, err := math.NewFit(samples, degree)
	if err != nil {
		metrics.Observer.Fit(degree.String(), metrics.Failed, 0)
		return model.FitResult{}, err
	}
	metrics.Observer.Fit(degree.String(), metrics.OK, time.Since(start))
	return result, nil
}

// Submit processes the request, stores the points with their equation
// and returns the result along with all the stored points.
// Storage failures are logged and do not fail the request.
func (s *Service) Submit(ctx context.Context, request Request) (Response, error) {
	points := request.Points
	if points == nil {
		points = []model.Sample{}
	}

	result, err := s.Process(request.CurveType, points)
	if err != nil {
		log.Warn().
			Str("curve", request.CurveType).
			Int("points", len(points)).
			Err(err).
			Msg("could not fit points")
		return Response{}, err
	}

	if err := s.gateway.Store(ctx, points, request.CurveType, result.Equation); err != nil {
		log.Error().Err(err).Int("points", len(points)).Msg("could not store points")
		metrics.Observer.StorageError(metrics.Store)
	}

	coefficients := result.Coefficients
	if coefficients == nil {
		coefficients = []float64{}
	}

	return Response{
		FittedEquation: result.Equation,
		CurveType:      request.CurveType,
		Points:         points,
		DatabaseData:   s.History(ctx),
		Degree:         result.Degree,
		Coefficients:   coefficients,
		RSquared:       result.RSquared,
	}, nil
}

// History returns all the stored points.
// Storage failures are logged and result in an empty history.
func (s *Service) History(ctx context.Context) []model.Sample {
	samples, err := s.gateway.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not load points")
		metrics.Observer.StorageError(metrics.Load)
		return []model.Sample{}
	}
	return samples
}

// IsFitError checks if the error comes from the input points rather than the service.
func IsFitError(err error) bool {
	return errors.Is(err, math.InsufficientDataErr) ||
		errors.Is(err, math.SingularSystemErr) ||
		errors.Is(err, math.InvalidDegreeErr)
}
