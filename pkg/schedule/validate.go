package schedule

import (
	"shiftHub/internal/models"
)

// Validate 校验规范化后的周排班表
// 创建分配与单独更新排班走同一套规则：
// 7条记录且 day 0-6 各出现一次（对编解码结果的防御性复查），
// 至少启用一天，启用的天分钟数在 [0,1439] 内且起止不相等
func Validate(ws models.WeekSchedule) error {
	if len(ws) != models.DaysInWeek {
		return models.NewInvalidScheduleError("排班表必须为7天, 实际 %d 天", len(ws))
	}

	seen := make(map[int]bool, models.DaysInWeek)
	enabled := 0
	for _, d := range ws {
		if d.Day < 0 || d.Day >= models.DaysInWeek {
			return models.NewInvalidScheduleError("非法的天下标: %d", d.Day)
		}
		if seen[d.Day] {
			return models.NewInvalidScheduleError("重复的天: %s", models.DayNames[d.Day])
		}
		seen[d.Day] = true

		if !d.Enabled {
			continue
		}
		enabled++

		if d.StartMinute < 0 || d.StartMinute >= MinutesInDay {
			return models.NewInvalidScheduleError("%s 开始时间超出范围: %d", models.DayNames[d.Day], d.StartMinute)
		}
		if d.EndMinute < 0 || d.EndMinute >= MinutesInDay {
			return models.NewInvalidScheduleError("%s 结束时间超出范围: %d", models.DayNames[d.Day], d.EndMinute)
		}
		if d.StartMinute == d.EndMinute {
			return models.NewInvalidScheduleError("%s 起止时间不能相等", models.DayNames[d.Day])
		}
	}

	if enabled == 0 {
		return models.NewInvalidScheduleError("至少需要启用一天")
	}

	return nil
}
