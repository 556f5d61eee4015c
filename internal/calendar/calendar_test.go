package calendar

import (
	"testing"
	"time"
)

// 2025 秋季学期：8月26日（周二）开始，共18周
var testStart = time.Date(2025, 8, 26, 0, 0, 0, 0, time.Local)

const testTotalWeeks = 18

func newTestCalendar(now time.Time) *Calendar {
	c := New(testStart, testTotalWeeks)
	c.Now = func() time.Time { return now }
	return c
}

// ── WeekDate / WeekDates ──

func TestWeekDate_NormalizesToMonday(t *testing.T) {
	c := New(testStart, testTotalWeeks)

	// 学期从周二开始，第0周周一应归一化为前一天
	monday := c.WeekDate(0, Monday)
	want := time.Date(2025, 8, 25, 0, 0, 0, 0, time.Local)
	if !monday.Equal(want) {
		t.Errorf("期望第0周周一=%v，实际=%v", want, monday)
	}
}

func TestWeekDate_WeekdayMatches(t *testing.T) {
	c := New(testStart, testTotalWeeks)

	wantWeekdays := map[DayOfWeek]time.Weekday{
		Monday:    time.Monday,
		Tuesday:   time.Tuesday,
		Wednesday: time.Wednesday,
		Thursday:  time.Thursday,
		Friday:    time.Friday,
	}

	week0Monday := c.WeekDate(0, Monday)
	for week := 0; week < testTotalWeeks; week++ {
		for i, day := range Days {
			date := c.WeekDate(week, day)
			if date.Weekday() != wantWeekdays[day] {
				t.Errorf("第%d周 %s 的星期不符：%v", week, day, date.Weekday())
			}
			// 周序号校验：与第0周周一的天数差应为 week*7+i
			wantDiff := week*7 + i
			gotDiff := int(date.Sub(week0Monday).Hours() / 24)
			if gotDiff != wantDiff {
				t.Errorf("第%d周 %s 偏移天数期望%d，实际%d", week, day, wantDiff, gotDiff)
			}
		}
	}
}

func TestWeekDate_NoClampOutOfRange(t *testing.T) {
	c := New(testStart, testTotalWeeks)

	// 越界周序号不钳制，用于导航边界计算
	prev := c.WeekDate(-1, Monday)
	want := time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local)
	if !prev.Equal(want) {
		t.Errorf("期望第-1周周一=%v，实际=%v", want, prev)
	}

	beyond := c.WeekDate(testTotalWeeks, Monday)
	if !beyond.After(c.WeekDate(testTotalWeeks-1, Friday)) {
		t.Error("超出总周数的周一应晚于最后一周的周五")
	}
}

func TestWeekDates_LabelsAndOrder(t *testing.T) {
	c := New(testStart, testTotalWeeks)

	days := c.WeekDates(0)
	if len(days) != 5 {
		t.Fatalf("期望5个工作日，实际%d", len(days))
	}

	wantLabels := []string{"Aug 25", "Aug 26", "Aug 27", "Aug 28", "Aug 29"}
	for i, wd := range days {
		if wd.Day != Days[i] {
			t.Errorf("第%d个工作日期望%s，实际%s", i, Days[i], wd.Day)
		}
		if wd.Label != wantLabels[i] {
			t.Errorf("第%d个标签期望%q，实际%q", i, wantLabels[i], wd.Label)
		}
	}
}

// ── CurrentWeekIndex ──

func TestCurrentWeekIndex_ClampsBeforeStart(t *testing.T) {
	c := newTestCalendar(time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local))
	if got := c.CurrentWeekIndex(); got != 0 {
		t.Errorf("学期开始前期望第0周，实际%d", got)
	}
}

func TestCurrentWeekIndex_ClampsAfterEnd(t *testing.T) {
	c := newTestCalendar(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))
	if got := c.CurrentWeekIndex(); got != testTotalWeeks-1 {
		t.Errorf("学期结束后期望第%d周，实际%d", testTotalWeeks-1, got)
	}
}

func TestCurrentWeekIndex_MidSemester(t *testing.T) {
	// 开始日 + 21 天 = 第3周
	c := newTestCalendar(testStart.AddDate(0, 0, 21).Add(9 * time.Hour))
	if got := c.CurrentWeekIndex(); got != 3 {
		t.Errorf("期望第3周，实际%d", got)
	}
}

func TestCurrentWeekIndex_StableWithinDay(t *testing.T) {
	morning := newTestCalendar(testStart.AddDate(0, 0, 10).Add(8 * time.Hour))
	evening := newTestCalendar(testStart.AddDate(0, 0, 10).Add(22 * time.Hour))
	if morning.CurrentWeekIndex() != evening.CurrentWeekIndex() {
		t.Error("同一天内多次计算周序号应一致")
	}
}

func TestCurrentWeekIndex_Monotonic(t *testing.T) {
	prev := -1
	for d := -10; d < testTotalWeeks*7+10; d++ {
		c := newTestCalendar(testStart.AddDate(0, 0, d).Add(12 * time.Hour))
		got := c.CurrentWeekIndex()
		if got < prev {
			t.Fatalf("周序号应随时间单调不减：第%d天得到%d，之前为%d", d, got, prev)
		}
		if got < 0 || got > testTotalWeeks-1 {
			t.Fatalf("周序号越界：%d", got)
		}
		prev = got
	}
}

// ── WeekEnded ──

func TestWeekEnded(t *testing.T) {
	// 第0周周五为 2025-08-29
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"周五当天未结束", time.Date(2025, 8, 29, 12, 0, 0, 0, time.Local), false},
		{"周六凌晨已结束", time.Date(2025, 8, 30, 0, 0, 0, 0, time.Local), true},
		{"下周一已结束", time.Date(2025, 9, 1, 8, 0, 0, 0, time.Local), true},
		{"周三未结束", time.Date(2025, 8, 27, 18, 0, 0, 0, time.Local), false},
	}
	for _, tt := range tests {
		c := newTestCalendar(tt.now)
		if got := c.WeekEnded(0); got != tt.want {
			t.Errorf("%s: WeekEnded(0)期望%v，实际%v", tt.name, tt.want, got)
		}
	}
}

// ── 时间段 ──

func TestFormatTimeSlot(t *testing.T) {
	tests := []struct {
		slot string
		want string
	}{
		{"13:00-13:30", "1:00 PM - 1:30 PM"},
		{"00:00-00:30", "12:00 AM - 12:30 AM"},
		{"12:00-12:30", "12:00 PM - 12:30 PM"},
		{"08:30-09:00", "8:30 AM - 9:00 AM"},
		{"11:30-12:00", "11:30 AM - 12:00 PM"},
	}
	for _, tt := range tests {
		if got := FormatTimeSlot(tt.slot); got != tt.want {
			t.Errorf("FormatTimeSlot(%q)期望%q，实际%q", tt.slot, tt.want, got)
		}
	}
}

func TestValidateTimeSlot(t *testing.T) {
	valid := []string{"08:30-09:00", "16:00-16:30", "12:00-12:30", "09:00-09:30"}
	for _, slot := range valid {
		if err := ValidateTimeSlot(slot); err != nil {
			t.Errorf("%q 应为合法时间段: %v", slot, err)
		}
	}

	invalid := []string{
		"09:00-10:00", // 60分钟
		"07:00-07:30", // 早于营业时间
		"16:30-17:00", // 晚于营业时间
		"9:00-09:30",  // 格式错误
		"09:00",       // 缺少结束时间
		"09:60-10:30", // 非法分钟
		"",
	}
	for _, slot := range invalid {
		if err := ValidateTimeSlot(slot); err == nil {
			t.Errorf("%q 应为非法时间段", slot)
		}
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 16 {
		t.Fatalf("期望16个时间段，实际%d", len(slots))
	}
	if slots[0] != "08:30-09:00" {
		t.Errorf("首个时间段期望08:30-09:00，实际%s", slots[0])
	}
	if slots[len(slots)-1] != "16:00-16:30" {
		t.Errorf("末个时间段期望16:00-16:30，实际%s", slots[len(slots)-1])
	}
	for _, slot := range slots {
		if err := ValidateTimeSlot(slot); err != nil {
			t.Errorf("生成的时间段 %q 未通过校验: %v", slot, err)
		}
	}
}
