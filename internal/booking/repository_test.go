package booking

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapCreateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "suppressed insert is a slot conflict",
			err:  pgx.ErrNoRows,
			want: ErrSlotConflict,
		},
		{
			name: "exclusion violation is a slot conflict",
			err:  &pgconn.PgError{Code: pgerrcode.ExclusionViolation, ConstraintName: "bookings_no_overlap"},
			want: ErrSlotConflict,
		},
		{
			name: "facility fk violation is facility not found",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "bookings_facility_id_fkey"},
			want: ErrFacilityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapCreateError(tt.err), tt.want)
		})
	}
}

// A user deleted between auth and insert trips the user_id foreign key;
// that must not be reported as a missing facility.
func TestMapCreateError_UserFKNotFacility(t *testing.T) {
	err := mapCreateError(&pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: "bookings_user_id_fkey",
	})
	assert.NotErrorIs(t, err, ErrFacilityNotFound)
	assert.Error(t, err)
}
