// Package mapdemo parses demo flags and maps reservations in both directions.
package mapdemo

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dklassen/mapreg"
	"github.com/dklassen/mapreg/internal/platform/config"
	"github.com/dklassen/mapreg/internal/platform/otel"
	"github.com/dklassen/mapreg/internal/reservation"
	"github.com/dklassen/mapreg/internal/telemetry"
)

// ServiceName identifies the demo in telemetry.
const ServiceName = "mapdemo"

const otelShutdownTimeout = 5 * time.Second

// Config holds demo command configuration.
type Config struct {
	ReservationID   string `env:"RESERVATION_ID" envDefault:"123"`
	GoogleBookingID string `env:"GOOGLE_BOOKING_ID" envDefault:"456"`
	OTel            otel.Config
}

// ParseConfig parses environment and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.ReservationID, "reservation-id", cfg.ReservationID, "Reservation id mapped to a Google booking")
	fs.StringVar(&cfg.GoogleBookingID, "google-booking-id", cfg.GoogleBookingID, "Google booking id mapped to a reservation")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the registry, registers the reservation mappings and writes the
// result of mapping each configured id to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output writer is required")
	}
	shutdown, err := otel.Setup(ctx, ServiceName, cfg.OTel)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", ServiceName, err)
		}
	}()

	reg := mapreg.NewRegistry()
	if err := reservation.Register(reg); err != nil {
		return err
	}
	traced := telemetry.NewTracedMapper(reg, nil)
	mapper := mapreg.MapperFunc(func(data any, source, target mapreg.TypeID) (any, error) {
		return traced.MapContext(ctx, data, source, target)
	})

	google, err := mapreg.MapAs[reservation.GoogleReservation](mapper,
		reservation.Reservation{ReservationID: cfg.ReservationID},
		reservation.TypeReservation, reservation.TypeGoogleReservation)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Mapped GoogleReservation ID: %s\n", google.GoogleBookingID)

	res, err := mapreg.MapAs[reservation.Reservation](mapper,
		reservation.GoogleReservation{GoogleBookingID: cfg.GoogleBookingID},
		reservation.TypeGoogleReservation, reservation.TypeReservation)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Mapped Reservation ID: %s\n", res.ReservationID)
	return nil
}
