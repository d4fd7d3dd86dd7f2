package schedule

import (
	"context"
	"testing"

	"clinicore/models"
	"clinicore/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-05 is a Monday.
const monday = "2026-01-05"

func strPtr(s string) *string { return &s }

func newService(avail *fakeAvailabilityRepo, appts *fakeAppointmentRepo) *DefaultScheduleService {
	return &DefaultScheduleService{Availability: avail, Appointments: appts}
}

func mondayAvailability(doctorID, start, end string, breakStart, breakEnd *string) models.WeeklyAvailability {
	return models.WeeklyAvailability{
		ID:         "avail-mon",
		DoctorID:   doctorID,
		DayOfWeek:  1,
		StartTime:  start,
		EndTime:    end,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
		IsActive:   true,
	}
}

func TestGetAvailableSlotsExcludesBookedSlot(t *testing.T) {
	avail := newFakeAvailabilityRepo()
	avail.rows["doc-1"] = []models.WeeklyAvailability{mondayAvailability("doc-1", "09:00", "12:00", nil, nil)}
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "apt-1", DoctorID: "doc-1", Date: monday, TimeSlot: "10:00", Duration: 30, Status: models.StatusConfirmed},
	}}

	resp, err := newService(avail, appts).GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, resp.Slots)
	require.NotNil(t, resp.WorkingHours)
	assert.Equal(t, "09:00", resp.WorkingHours.Start)
	assert.Equal(t, "12:00", resp.WorkingHours.End)
}

func TestGetAvailableSlotsExcludesBreakWindow(t *testing.T) {
	avail := newFakeAvailabilityRepo()
	avail.rows["doc-1"] = []models.WeeklyAvailability{
		mondayAvailability("doc-1", "09:00", "17:00", strPtr("12:00"), strPtr("13:00")),
	}

	resp, err := newService(avail, &fakeAppointmentRepo{}).GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, "12:00")
	assert.NotContains(t, resp.Slots, "12:30")
	assert.Contains(t, resp.Slots, "11:30")
	assert.Contains(t, resp.Slots, "13:00")
}

func TestGetAvailableSlotsBreakBoundaryIsHalfOpen(t *testing.T) {
	// Slot ending exactly when the break starts, and slot starting exactly
	// when the break ends, both remain bookable.
	avail := newFakeAvailabilityRepo()
	avail.rows["doc-1"] = []models.WeeklyAvailability{
		mondayAvailability("doc-1", "09:00", "12:00", strPtr("10:00"), strPtr("10:30")),
	}

	resp, err := newService(avail, &fakeAppointmentRepo{}).GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, resp.Slots)
}

func TestGetAvailableSlotsLongAppointmentBlocksRange(t *testing.T) {
	// A 60-minute appointment blocks both slots it spans.
	avail := newFakeAvailabilityRepo()
	avail.rows["doc-1"] = []models.WeeklyAvailability{mondayAvailability("doc-1", "09:00", "11:00", nil, nil)}
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "apt-1", DoctorID: "doc-1", Date: monday, TimeSlot: "09:00", Duration: 60, Status: models.StatusConfirmed},
	}}

	resp, err := newService(avail, appts).GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30"}, resp.Slots)
}

func TestGetAvailableSlotsCancelledAppointmentDoesNotBlock(t *testing.T) {
	avail := newFakeAvailabilityRepo()
	avail.rows["doc-1"] = []models.WeeklyAvailability{mondayAvailability("doc-1", "09:00", "10:00", nil, nil)}
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "apt-1", DoctorID: "doc-1", Date: monday, TimeSlot: "09:00", Duration: 30, Status: models.StatusCancelled},
	}}

	resp, err := newService(avail, appts).GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30"}, resp.Slots)
}

func TestGetAvailableSlotsNoScheduleForDay(t *testing.T) {
	resp, err := newService(newFakeAvailabilityRepo(), &fakeAppointmentRepo{}).
		GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Nil(t, resp.WorkingHours)
	assert.NotEmpty(t, resp.Message)
}

func TestGetAvailableSlotsInactiveScheduleTreatedAsClosed(t *testing.T) {
	avail := newFakeAvailabilityRepo()
	row := mondayAvailability("doc-1", "09:00", "12:00", nil, nil)
	row.IsActive = false
	avail.rows["doc-1"] = []models.WeeklyAvailability{row}

	resp, err := newService(avail, &fakeAppointmentRepo{}).GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailableSlotsIsDeterministic(t *testing.T) {
	avail := newFakeAvailabilityRepo()
	avail.rows["doc-1"] = []models.WeeklyAvailability{
		mondayAvailability("doc-1", "08:00", "16:00", strPtr("12:00"), strPtr("12:30")),
	}
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "apt-1", DoctorID: "doc-1", Date: monday, TimeSlot: "08:30", Duration: 30, Status: models.StatusPending},
	}}
	svc := newService(avail, appts)

	first, err := svc.GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)
	second, err := svc.GetAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestGetAvailableSlotsValidation(t *testing.T) {
	svc := newService(newFakeAvailabilityRepo(), &fakeAppointmentRepo{})

	_, err := svc.GetAvailableSlots(context.Background(), "", monday)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = svc.GetAvailableSlots(context.Background(), "doc-1", "")
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = svc.GetAvailableSlots(context.Background(), "doc-1", "05-01-2026")
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestIntervalFreeContainment(t *testing.T) {
	// A candidate that fully swallows a shorter busy range is excluded even
	// though neither of its endpoints falls inside the range.
	busy := []interval{{start: 610, end: 620}}
	assert.False(t, intervalFree(600, 630, busy))
	assert.True(t, intervalFree(570, 600, busy))
	assert.True(t, intervalFree(630, 660, busy))
}
