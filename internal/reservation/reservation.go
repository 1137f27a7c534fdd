// Package reservation defines booking records and the mappings between the
// internal and Google representations.
package reservation

import (
	"fmt"

	"github.com/dklassen/mapreg"
)

const (
	TypeReservation       mapreg.TypeID = "Reservation"
	TypeGoogleReservation mapreg.TypeID = "GoogleReservation"
)

// Reservation is the internal booking record.
type Reservation struct {
	ReservationID string
}

// GoogleReservation is the booking as exchanged with Google.
type GoogleReservation struct {
	GoogleBookingID string
}

func toGoogle(r Reservation) (GoogleReservation, error) {
	return GoogleReservation{GoogleBookingID: r.ReservationID}, nil
}

func fromGoogle(g GoogleReservation) (Reservation, error) {
	return Reservation{ReservationID: g.GoogleBookingID}, nil
}

// Entries returns the mappings in both directions.
func Entries() ([]mapreg.Entry, error) {
	forward, err := mapreg.NewTypedEntry(TypeReservation, TypeGoogleReservation, toGoogle)
	if err != nil {
		return nil, err
	}
	backward, err := mapreg.NewTypedEntry(TypeGoogleReservation, TypeReservation, fromGoogle)
	if err != nil {
		return nil, err
	}
	return []mapreg.Entry{forward, backward}, nil
}

// Register installs Entries into r.
func Register(r *mapreg.Registry) error {
	entries, err := Entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			return fmt.Errorf("register %s to %s: %w", e.SourceType(), e.TargetType(), err)
		}
	}
	return nil
}
