package calendar

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ── 工作日 ──

// DayOfWeek 工作日（周一至周五）
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
)

// Days 工作日的语义顺序（周一在前）
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday}

// DayIndex 返回工作日在 Days 中的零基序号，无效值返回 -1
func DayIndex(day DayOfWeek) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// IsValidDay 判断字符串是否为合法工作日
func IsValidDay(s string) bool {
	return DayIndex(DayOfWeek(s)) >= 0
}

// ── 时间段 ──

// 营业时间窗口：08:30–16:30，按 30 分钟切分
const (
	businessStartMinutes = 8*60 + 30
	businessEndMinutes   = 16*60 + 30
	slotDurationMinutes  = 30
)

var slotPattern = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// ErrInvalidTimeSlot 时间段格式或范围非法
var ErrInvalidTimeSlot = errors.New("时间段必须是营业时间（08:30-16:30）内的 30 分钟区间，格式 HH:MM-HH:MM")

// ValidateTimeSlot 校验时间段字符串：
// 格式 HH:MM-HH:MM，恰好 30 分钟，且落在 08:30–16:30 营业窗口内。
func ValidateTimeSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return ErrInvalidTimeSlot
	}
	start, end, err := parseSlotMinutes(slot)
	if err != nil {
		return ErrInvalidTimeSlot
	}
	if start < businessStartMinutes || end > businessEndMinutes || end-start != slotDurationMinutes {
		return ErrInvalidTimeSlot
	}
	return nil
}

// parseSlotMinutes 将 "HH:MM-HH:MM" 解析为起止分钟数
func parseSlotMinutes(slot string) (int, int, error) {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 {
		return 0, 0, ErrInvalidTimeSlot
	}
	start, err := parseClockMinutes(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseClockMinutes(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseClockMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, ErrInvalidTimeSlot
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeSlot
	}
	return hour*60 + minute, nil
}

// TimeSlots 返回营业时间内全部 16 个半小时时间段（08:30-09:00 .. 16:00-16:30）
func TimeSlots() []string {
	slots := make([]string, 0, (businessEndMinutes-businessStartMinutes)/slotDurationMinutes)
	for m := businessStartMinutes; m < businessEndMinutes; m += slotDurationMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d-%02d:%02d",
			m/60, m%60, (m+slotDurationMinutes)/60, (m+slotDurationMinutes)%60))
	}
	return slots
}

// FormatTime 将 24 小时制 "HH:MM" 转为 "h:mm AM/PM"（0 时与 12 时均显示为 12）
func FormatTime(clock string) string {
	minutes, err := parseClockMinutes(clock)
	if err != nil {
		return clock
	}
	hour, minute := minutes/60, minutes%60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, period)
}

// FormatTimeSlot 将 "HH:MM-HH:MM" 转为 "h:mm AM/PM - h:mm AM/PM" 显示格式
func FormatTimeSlot(slot string) string {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 {
		return slot
	}
	return FormatTime(parts[0]) + " - " + FormatTime(parts[1])
}

// ── 学期周历 ──

// WeekDay 某周内单个工作日的展示信息
type WeekDay struct {
	Day   DayOfWeek
	Date  time.Time
	Label string // 短月份+两位日，如 "Aug 26"
}

// Calendar 学期周历：由学期开始日期与总周数构成。
// Now 为可注入的时钟，默认 time.Now，测试时可替换。
type Calendar struct {
	Start      time.Time
	TotalWeeks int
	Now        func() time.Time
}

// New 创建学期周历
func New(start time.Time, totalWeeks int) *Calendar {
	return &Calendar{
		Start:      startOfDay(start),
		TotalWeeks: totalWeeks,
		Now:        time.Now,
	}
}

// WeekDate 返回第 weekIndex 周（零基）指定工作日的日期。
// 先将开始日期推进 weekIndex 整周，归一化到该周周一，再按工作日偏移。
// weekIndex 允许越界（负数或超过总周数），此处不做钳制，钳制只发生在 CurrentWeekIndex。
func (c *Calendar) WeekDate(weekIndex int, day DayOfWeek) time.Time {
	weekStart := c.Start.AddDate(0, 0, weekIndex*7)
	monday := startOfWeekMonday(weekStart)
	return monday.AddDate(0, 0, DayIndex(day))
}

// WeekDates 返回第 weekIndex 周全部 5 个工作日的日期与显示标签
func (c *Calendar) WeekDates(weekIndex int) []WeekDay {
	result := make([]WeekDay, 0, len(Days))
	for _, day := range Days {
		date := c.WeekDate(weekIndex, day)
		result = append(result, WeekDay{
			Day:   day,
			Date:  date,
			Label: date.Format("Jan 02"),
		})
	}
	return result
}

// CurrentWeekIndex 计算今天所在的周序号：
// 距学期开始的整天数除以 7 向下取整，并钳制到 [0, TotalWeeks-1]。
// 学期开始前返回 0，学期结束后返回最后一周。
func (c *Calendar) CurrentWeekIndex() int {
	diffDays := int(math.Floor(c.Now().Sub(c.Start).Hours() / 24))
	weekIndex := int(math.Floor(float64(diffDays) / 7))
	if weekIndex < 0 {
		return 0
	}
	if weekIndex > c.TotalWeeks-1 {
		return c.TotalWeeks - 1
	}
	return weekIndex
}

// WeekEnded 判断第 weekIndex 周是否已经结束（当前时间已越过该周周五）
func (c *Calendar) WeekEnded(weekIndex int) bool {
	friday := c.WeekDate(weekIndex, Friday)
	return !c.Now().Before(friday.AddDate(0, 0, 1))
}

// startOfDay 归一化到当天零点
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeekMonday 归一化到所在周的周一零点
func startOfWeekMonday(t time.Time) time.Time {
	t = startOfDay(t)
	offset := (int(t.Weekday()) + 6) % 7 // 周一=0 .. 周日=6
	return t.AddDate(0, 0, -offset)
}
