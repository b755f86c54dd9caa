package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/curve-fit/internal/math"
	"github.com/drakos74/curve-fit/internal/model"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	curveType := flag.String("type", string(model.LinearCurve), fmt.Sprintf("curve type, one of %v", model.KnownCurves()))
	in := flag.String("in", "", "file with one 'x,y' point per line, defaults to stdin")
	flag.Parse()

	degree, err := model.ParseCurveType(*curveType)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid curve type")
	}

	r := io.Reader(os.Stdin)
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal().Err(err).Str("file", *in).Msg("could not open points")
		}
		defer f.Close()
		r = f
	}

	samples, err := readSamples(r)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read points")
	}

	fit, err := math.NewFit(samples, degree)
	if err != nil {
		log.Fatal().Err(err).Int("points", len(samples)).Str("curve", degree.String()).Msg("could not fit points")
	}
	fmt.Println(fit.Equation)
	fmt.Printf("r2 = %s\n", math.Format(fit.RSquared))
}

// readSamples parses 'x,y' lines, skipping blank lines and '#' comments.
func readSamples(r io.Reader) ([]model.Sample, error) {
	samples := make([]model.Sample, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected 'x,y' but got '%s'", line, text)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse x: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse y: %w", line, err)
		}
		samples = append(samples, model.Sample{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
