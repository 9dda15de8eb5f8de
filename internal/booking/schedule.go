package booking

import (
	"fmt"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/facility"
)

// This file holds the pure scheduling logic: admission validation and
// the availability grid. Nothing here touches storage or the wall
// clock; "now" is always an argument, which is what makes the rules
// testable at exact boundaries.

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A booking ending at 10:00 does not overlap
// one starting at 10:00. Inputs are zero-padded HH:MM strings, so
// string comparison is chronological.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// conflictsWith reports whether the candidate interval collides with an
// existing booking on the same facility and date. Rejected bookings
// never block; pending and approved both do, so a pending request
// cannot be silently double-booked while it waits for a decision.
func conflictsWith(req CreateRequest, b *Booking) bool {
	if b.FacilityID != req.FacilityID || b.Date != req.Date {
		return false
	}
	if !b.Status.Blocks() {
		return false
	}
	return Overlaps(req.StartTime, req.EndTime, b.StartTime, b.EndTime)
}

// ValidateCandidate runs the admission rules for a proposed booking
// against a snapshot of existing bookings. Rules run in a fixed order
// and the first failure wins, which pins down the user-facing error:
//
//	1. time range       -> ErrInvalidTimeRange
//	2. capacity         -> ErrCapacityExceeded
//	3. past start       -> ErrPastBooking
//	4. closed weekday   -> ErrFacilityClosed
//	5. slot overlap     -> ErrSlotConflict
//
// A nil return means the candidate is admissible against this
// snapshot; the repository re-checks at write time.
func ValidateCandidate(
	req CreateRequest,
	fac *facility.Facility,
	existing []*Booking,
	closedWeekdays []time.Weekday,
	now time.Time,
) error {
	startAt, err := composeDateTime(req.Date, req.StartTime)
	if err != nil {
		return ErrInvalidInput
	}
	if _, err := composeDateTime(req.Date, req.EndTime); err != nil {
		return ErrInvalidInput
	}

	if req.StartTime >= req.EndTime {
		return ErrInvalidTimeRange
	}

	if req.Pax <= 0 || req.Pax > fac.Capacity {
		return ErrCapacityExceeded
	}

	// Strict "before now": a start exactly at now is still bookable.
	if startAt.Before(now) {
		return ErrPastBooking
	}

	for _, day := range closedWeekdays {
		if startAt.Weekday() == day {
			return ErrFacilityClosed
		}
	}

	for _, b := range existing {
		if conflictsWith(req, b) {
			return ErrSlotConflict
		}
	}

	return nil
}

// AvailableStartTimes returns the aligned start-of-slot times a client
// may offer for the given facility and date: every `step`-aligned time
// in [open, close), minus times already passed today, minus times that
// fall inside a blocking booking's interval.
func AvailableStartTimes(
	date string,
	step time.Duration,
	open, close string,
	existing []*Booking,
	now time.Time,
) ([]string, error) {
	openMin, err := parseHHMM(open)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", open, err)
	}
	closeMin, err := parseHHMM(close)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", close, err)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidInput
	}

	stepMin := int(step.Minutes())
	if stepMin <= 0 {
		return nil, fmt.Errorf("invalid slot granularity %v", step)
	}

	// On the selected day itself, slots at or before the current moment
	// are gone: you cannot book a slot that has already started.
	cutoff := -1
	if date == now.Format("2006-01-02") {
		cutoff = now.Hour()*60 + now.Minute()
	}

	var slots []string
	for m := openMin; m < closeMin; m += stepMin {
		if m <= cutoff {
			continue
		}

		t := formatHHMM(m)
		blocked := false
		for _, b := range existing {
			if b.Date == date && b.Status.Blocks() && t >= b.StartTime && t < b.EndTime {
				blocked = true
				break
			}
		}
		if !blocked {
			slots = append(slots, t)
		}
	}

	return slots, nil
}

// composeDateTime combines a YYYY-MM-DD date and an HH:MM time-of-day
// into a single UTC instant.
func composeDateTime(date, hhmm string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+hhmm)
}

func parseHHMM(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatHHMM(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
