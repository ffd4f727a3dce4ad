package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"econviz/internal/api/worldbank"
	"econviz/internal/chart"
	"econviz/internal/config"
	"econviz/internal/model"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading configuration failed")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	query := model.IndicatorQuery{
		CountryCode:   cfg.CountryCode,
		IndicatorCode: cfg.IndicatorCode,
		StartYear:     cfg.StartYear,
		EndYear:       cfg.EndYear,
	}

	client := worldbank.NewClient(worldbank.ClientOptions{
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
		MaxRetries:     cfg.MaxRetries,
	})

	log.Info().
		Str("country", query.CountryCode).
		Str("indicator", query.IndicatorCode).
		Str("range", query.DateRange()).
		Msg("Fetching indicator series")

	series, err := client.FetchSeries(context.Background(), query)
	if err != nil {
		var retrievalErr *worldbank.RetrievalError
		var formatErr *worldbank.FormatError
		switch {
		case errors.As(err, &retrievalErr):
			log.Fatal().Err(err).Msg("Could not reach the data source")
		case errors.As(err, &formatErr):
			log.Fatal().Err(err).Msg("Data source returned an unexpected format")
		default:
			log.Fatal().Err(err).Msg("Fetching series failed")
		}
	}

	if len(series) == 0 {
		log.Warn().
			Str("country", query.CountryCode).
			Str("indicator", query.IndicatorCode).
			Msg("No observations in the requested range")
		return
	}

	for _, sample := range series {
		log.Info().Int("year", sample.Year).Float64("value", sample.Value).Msg("Observation")
	}

	title := fmt.Sprintf("%s %s (%s)", query.CountryCode, query.IndicatorCode, query.DateRange())

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.OutputPath).Msg("Creating output file failed")
	}

	renderer := chart.NewRenderer()
	if err := renderer.Render(title, series, out); err != nil {
		out.Close()
		log.Fatal().Err(err).Msg("Rendering chart failed")
	}
	if err := out.Close(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.OutputPath).Msg("Closing output file failed")
	}

	log.Info().Str("path", cfg.OutputPath).Int("samples", len(series)).Msg("Chart written")
}
