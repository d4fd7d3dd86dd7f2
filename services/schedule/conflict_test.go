package schedule

import (
	"context"
	"testing"

	"clinicore/models"
	"clinicore/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSlotTakenExactMatch(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "apt-1", DoctorID: "doc-1", Date: monday, TimeSlot: "09:00", Duration: 60, Status: models.StatusConfirmed},
	}}
	svc := newService(newFakeAvailabilityRepo(), appts)

	taken, err := svc.IsSlotTaken(context.Background(), "doc-1", monday, "09:00")
	require.NoError(t, err)
	assert.True(t, taken)

	// The guard checks exact slot equality only. A 09:30 request overlaps
	// the 60-minute 09:00 appointment but passes; range exclusion belongs
	// to the slot generator.
	taken, err = svc.IsSlotTaken(context.Background(), "doc-1", monday, "09:30")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestIsSlotTakenIgnoresCancelled(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "apt-1", DoctorID: "doc-1", Date: monday, TimeSlot: "09:00", Duration: 30, Status: models.StatusCancelled},
	}}
	svc := newService(newFakeAvailabilityRepo(), appts)

	taken, err := svc.IsSlotTaken(context.Background(), "doc-1", monday, "09:00")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestIsSlotTakenValidation(t *testing.T) {
	svc := newService(newFakeAvailabilityRepo(), &fakeAppointmentRepo{})

	_, err := svc.IsSlotTaken(context.Background(), "doc-1", monday, "")
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = svc.IsSlotTaken(context.Background(), "doc-1", monday, "9am")
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = svc.IsSlotTaken(context.Background(), "doc-1", monday, "9:30")
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestReplaceWeeklyAvailability(t *testing.T) {
	avail := newFakeAvailabilityRepo()
	svc := newService(avail, &fakeAppointmentRepo{})

	rows := []models.WeeklyAvailability{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsActive: true},
		{DayOfWeek: 2, StartTime: "10:00", EndTime: "14:00", IsActive: true},
	}
	replaced, err := svc.ReplaceWeeklyAvailability(context.Background(), "doc-1", rows)
	require.NoError(t, err)
	require.Len(t, replaced, 2)
	assert.Equal(t, "doc-1", replaced[0].DoctorID)

	// Replace is wholesale: a second call with one row leaves exactly one.
	replaced, err = svc.ReplaceWeeklyAvailability(context.Background(), "doc-1", rows[:1])
	require.NoError(t, err)
	assert.Len(t, replaced, 1)

	stored, err := svc.GetWeeklyAvailability(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestReplaceWeeklyAvailabilityRejectsInvalidRows(t *testing.T) {
	svc := newService(newFakeAvailabilityRepo(), &fakeAppointmentRepo{})

	tests := []struct {
		name string
		rows []models.WeeklyAvailability
	}{
		{"start after end", []models.WeeklyAvailability{
			{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00", IsActive: true},
		}},
		{"break outside working hours", []models.WeeklyAvailability{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", BreakStart: strPtr("12:30"), BreakEnd: strPtr("13:00"), IsActive: true},
		}},
		{"duplicate weekday", []models.WeeklyAvailability{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true},
			{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00", IsActive: true},
		}},
		{"weekday out of range", []models.WeeklyAvailability{
			{DayOfWeek: 7, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ReplaceWeeklyAvailability(context.Background(), "doc-1", tt.rows)
			assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
		})
	}
}
