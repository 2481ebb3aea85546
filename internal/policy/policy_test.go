package policy

import (
	"github.com/stretchr/testify/assert"
	"shipdesk/internal/entity"
	"testing"
	"time"
)

func TestCutoffHour(t *testing.T) {
	assert.Equal(t, 12, CutoffHour(true), "provincial destinations cut off at noon")
	assert.Equal(t, 15, CutoffHour(false), "metro destinations cut off at 3 PM")
}

func TestIsNonOperatingDay(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{
			name:    "Saturday evening UTC is already Sunday in PHT",
			instant: time.Date(2023, 4, 1, 22, 0, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "Sunday noon in PHT",
			instant: time.Date(2023, 4, 2, 12, 0, 0, 0, Location),
			want:    true,
		},
		{
			name:    "Sunday evening UTC is already Monday in PHT",
			instant: time.Date(2023, 4, 2, 20, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "Monday morning in PHT",
			instant: time.Date(2023, 4, 3, 9, 0, 0, 0, Location),
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonOperatingDay(tt.instant))
		})
	}
}

func TestBusinessDate(t *testing.T) {
	assert.Equal(
		t,
		entity.Date{Year: 2023, Month: time.April, Day: 4},
		BusinessDate(time.Date(2023, 4, 3, 18, 0, 0, 0, time.UTC)),
		"instants after 16:00 UTC belong to the next PHT day",
	)
	assert.Equal(
		t,
		entity.Date{Year: 2023, Month: time.April, Day: 3},
		BusinessDate(time.Date(2023, 4, 3, 15, 59, 0, 0, time.UTC)),
	)
}

func TestCutoffAt(t *testing.T) {
	d := entity.Date{Year: 2023, Month: time.April, Day: 3}

	assert.True(
		t,
		CutoffAt(d, true).Equal(time.Date(2023, 4, 3, 4, 0, 0, 0, time.UTC)),
		"noon PHT is 04:00 UTC",
	)
	assert.True(
		t,
		CutoffAt(d, false).Equal(time.Date(2023, 4, 3, 7, 0, 0, 0, time.UTC)),
		"3 PM PHT is 07:00 UTC",
	)
}
