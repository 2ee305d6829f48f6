package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"shiftHub/internal/models"
)

// MinutesInDay 一天内合法的分钟值范围 [0, 1439]
const MinutesInDay = 24 * 60

// RawEntry 前端提交的原始排班条目
// Day 允许 0-6 的整数或不区分大小写的周内天名（周一优先排序）
// Start / End 允许 "HH:MM" 字符串或已经换算好的分钟数，两种形态都接受
type RawEntry struct {
	Day     interface{} `json:"day"`
	Enabled bool        `json:"enabled"`
	Start   interface{} `json:"start"`
	End     interface{} `json:"end"`
}

// ParseTimeOfDay 解析 "HH:MM" 为当天分钟数
// 仅接受两段冒号分隔的数字，小时 0-23，分钟 0-59
func ParseTimeOfDay(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, models.NewInvalidScheduleError("时间格式错误, 应为 HH:MM: %q", text)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, models.NewInvalidScheduleError("小时字段非数字: %q", text)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, models.NewInvalidScheduleError("分钟字段非数字: %q", text)
	}

	if hour < 0 || hour > 23 {
		return 0, models.NewInvalidScheduleError("小时超出范围 [0,23]: %q", text)
	}
	if minute < 0 || minute > 59 {
		return 0, models.NewInvalidScheduleError("分钟超出范围 [0,59]: %q", text)
	}

	return hour*60 + minute, nil
}

// FormatMinuteOfDay 分钟数转回 "HH:MM"
// 入参越界属于程序错误：只有校验过的分钟数才会走到格式化路径
func FormatMinuteOfDay(minute int) string {
	if minute < 0 || minute >= MinutesInDay {
		panic(fmt.Sprintf("minute of day out of range: %d", minute))
	}
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// NormalizeDayIdentifier 归一化天标识
// 接受已在 [0,6] 内的整数，或不区分大小写的天名，其余一律非法
func NormalizeDayIdentifier(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		if v >= 0 && v < models.DaysInWeek {
			return v, nil
		}
		return 0, models.NewInvalidScheduleError("天下标超出范围 [0,6]: %d", v)
	case int64:
		return NormalizeDayIdentifier(int(v))
	case float64:
		// JSON 数字统一解码为 float64，要求必须是整数值
		if v != float64(int(v)) {
			return 0, models.NewInvalidScheduleError("天下标必须为整数: %v", v)
		}
		return NormalizeDayIdentifier(int(v))
	case string:
		name := strings.ToLower(strings.TrimSpace(v))
		for i, dn := range models.DayNames {
			if dn == name {
				return i, nil
			}
		}
		return 0, models.NewInvalidScheduleError("无法识别的天名: %q", v)
	default:
		return 0, models.NewInvalidScheduleError("无法识别的天标识: %v", value)
	}
}

// parseMinuteField 解析时间字段，兼容 "HH:MM" 字符串与数字分钟两种形态
func parseMinuteField(value interface{}) (int, error) {
	switch v := value.(type) {
	case string:
		return ParseTimeOfDay(v)
	case int:
		if v < 0 || v >= MinutesInDay {
			return 0, models.NewInvalidScheduleError("分钟数超出范围 [0,1439]: %d", v)
		}
		return v, nil
	case int64:
		return parseMinuteField(int(v))
	case float64:
		if v != float64(int(v)) {
			return 0, models.NewInvalidScheduleError("分钟数必须为整数: %v", v)
		}
		return parseMinuteField(int(v))
	default:
		return 0, models.NewInvalidScheduleError("无法识别的时间字段: %v", value)
	}
}

// Normalize 将原始条目归一化为规范周排班表
// 任一条目非法则整体失败；缺省的天补为禁用；输出恒为7条且按 day 升序
func Normalize(raw []RawEntry) (models.WeekSchedule, error) {
	ws := models.DefaultWeekSchedule()
	seen := make(map[int]bool, models.DaysInWeek)

	for _, entry := range raw {
		day, err := NormalizeDayIdentifier(entry.Day)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			return nil, models.NewInvalidScheduleError("重复的天: %s", models.DayNames[day])
		}
		seen[day] = true

		if !entry.Enabled {
			continue
		}

		start, err := parseMinuteField(entry.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseMinuteField(entry.End)
		if err != nil {
			return nil, err
		}
		if start == end {
			// 全天窗口只允许 00:00-23:59 的表达方式
			return nil, models.NewInvalidScheduleError("%s 起止时间不能相等", models.DayNames[day])
		}

		ws[day] = models.DaySchedule{
			Day:         day,
			Enabled:     true,
			StartMinute: start,
			EndMinute:   end,
		}
	}

	return ws, nil
}
