package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paksr/MiniProject-Shoseki/internal/facility"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) // a Monday

func testFacility() *facility.Facility {
	return &facility.Facility{
		ID:        "meeting-a",
		Name:      "Meeting Room A",
		Kind:      facility.KindRoom,
		Capacity:  6,
		OpenTime:  "09:00",
		CloseTime: "22:00",
	}
}

func candidate(start, end string, pax int) CreateRequest {
	return CreateRequest{
		UserID:     "u1",
		FacilityID: "meeting-a",
		Date:       "2025-06-03",
		StartTime:  start,
		EndTime:    end,
		Pax:        pax,
	}
}

func existingBooking(start, end string, status Status) *Booking {
	return &Booking{
		ID:         "b-existing",
		FacilityID: "meeting-a",
		Date:       "2025-06-03",
		StartTime:  start,
		EndTime:    end,
		Pax:        2,
		Status:     status,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical intervals", "10:00", "11:00", "10:00", "11:00", true},
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"containment", "10:00", "12:00", "10:30", "11:00", true},
		{"touching at end does not overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"touching at start does not overlap", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "13:00", "14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestValidateCandidate_Order(t *testing.T) {
	fac := testFacility()
	conflicting := []*Booking{existingBooking("10:00", "11:00", StatusApproved)}

	tests := []struct {
		name     string
		req      CreateRequest
		existing []*Booking
		wantErr  error
	}{
		{
			name:    "start equals end",
			req:     candidate("10:00", "10:00", 2),
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "start after end",
			req:     candidate("11:00", "10:00", 2),
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "pax above capacity",
			req:     candidate("10:00", "11:00", 7),
			wantErr: ErrCapacityExceeded,
		},
		{
			name:    "pax at capacity is fine",
			req:     candidate("10:00", "11:00", 6),
			wantErr: nil,
		},
		{
			name: "start in the past",
			req: CreateRequest{
				FacilityID: "meeting-a", Date: "2025-06-02",
				StartTime: "09:00", EndTime: "10:00", Pax: 2,
			},
			wantErr: ErrPastBooking,
		},
		{
			name: "start exactly now is allowed",
			req: CreateRequest{
				FacilityID: "meeting-a", Date: "2025-06-02",
				StartTime: "10:00", EndTime: "11:00", Pax: 2,
			},
			wantErr: nil,
		},
		{
			name: "closed weekday",
			req: CreateRequest{
				FacilityID: "meeting-a", Date: "2025-06-08", // a Sunday
				StartTime: "10:00", EndTime: "11:00", Pax: 2,
			},
			wantErr: ErrFacilityClosed,
		},
		{
			name:     "overlap with approved booking",
			req:      candidate("10:30", "11:30", 2),
			existing: conflicting,
			wantErr:  ErrSlotConflict,
		},
		{
			name:     "overlap with pending booking",
			req:      candidate("10:30", "11:30", 2),
			existing: []*Booking{existingBooking("10:00", "11:00", StatusPending)},
			wantErr:  ErrSlotConflict,
		},
		{
			name:     "rejected booking does not block",
			req:      candidate("10:30", "11:30", 2),
			existing: []*Booking{existingBooking("10:00", "11:00", StatusRejected)},
			wantErr:  nil,
		},
		{
			name:     "back to back is fine",
			req:      candidate("11:00", "12:00", 2),
			existing: conflicting,
			wantErr:  nil,
		},
		{
			name:    "malformed time",
			req:     candidate("10am", "11:00", 2),
			wantErr: ErrInvalidInput,
		},
	}

	closed := []time.Weekday{time.Sunday}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.req, fac, tt.existing, closed, testNow)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// The first rule that fails determines the error, even when several
// rules would fail at once.
func TestValidateCandidate_FirstFailureWins(t *testing.T) {
	fac := testFacility()

	// Inverted range AND over capacity AND in the past: range wins.
	req := CreateRequest{
		FacilityID: "meeting-a", Date: "2025-06-01",
		StartTime: "11:00", EndTime: "10:00", Pax: 99,
	}
	err := ValidateCandidate(req, fac, nil, []time.Weekday{time.Sunday}, testNow)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Over capacity AND overlapping: capacity wins.
	req = candidate("10:00", "11:00", 99)
	existing := []*Booking{existingBooking("10:00", "11:00", StatusApproved)}
	err = ValidateCandidate(req, fac, existing, nil, testNow)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// In the past AND on a closed day: past wins.
	req = CreateRequest{
		FacilityID: "meeting-a", Date: "2025-06-01", // a Sunday, already gone
		StartTime: "09:00", EndTime: "10:00", Pax: 2,
	}
	err = ValidateCandidate(req, fac, nil, []time.Weekday{time.Sunday}, testNow)
	assert.ErrorIs(t, err, ErrPastBooking)
}

func TestAvailableStartTimes_Grid(t *testing.T) {
	// Future date, no bookings: full grid from open to just before close.
	slots, err := AvailableStartTimes("2025-06-03", time.Hour, "09:00", "12:00", nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)

	// Half-hour granularity.
	slots, err = AvailableStartTimes("2025-06-03", 30*time.Minute, "09:00", "11:00", nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestAvailableStartTimes_SameDayCutoff(t *testing.T) {
	// now is 10:00 on 2025-06-02: 09:00 and 10:00 itself are gone.
	slots, err := AvailableStartTimes("2025-06-02", time.Hour, "09:00", "13:00", nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "12:00"}, slots)

	// A different day keeps the full grid.
	slots, err = AvailableStartTimes("2025-06-03", time.Hour, "09:00", "13:00", nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00"}, slots)
}

func TestAvailableStartTimes_BlockedSlots(t *testing.T) {
	existing := []*Booking{
		existingBooking("10:00", "12:00", StatusApproved),
		existingBooking("13:00", "14:00", StatusPending),
		existingBooking("15:00", "16:00", StatusRejected),
	}

	slots, err := AvailableStartTimes("2025-06-03", time.Hour, "09:00", "17:00", existing, testNow)
	require.NoError(t, err)

	// 10:00 and 11:00 fall inside the approved interval, 13:00 inside
	// the pending one. 12:00 (the approved end) is free again, and the
	// rejected booking blocks nothing.
	assert.Equal(t, []string{"09:00", "12:00", "14:00", "15:00", "16:00"}, slots)
}

func TestAvailableStartTimes_InvalidInput(t *testing.T) {
	_, err := AvailableStartTimes("03-06-2025", time.Hour, "09:00", "12:00", nil, testNow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = AvailableStartTimes("2025-06-03", 0, "09:00", "12:00", nil, testNow)
	assert.Error(t, err)
}
