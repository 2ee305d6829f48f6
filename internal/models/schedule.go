package models

// DaysInWeek 周固定7天，周一为0
const DaysInWeek = 7

// DayNames 周内天名，固定周一优先排序，下标即规范化后的 day 值
var DayNames = [DaysInWeek]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// DaySchedule 单天的可用时间窗口
// enabled 为 false 时 start_minute / end_minute 强制归零
type DaySchedule struct {
	Day         int  `json:"day"`
	Enabled     bool `json:"enabled"`
	StartMinute int  `json:"start_minute"`
	EndMinute   int  `json:"end_minute"`
}

// WeekSchedule 周排班表，持久化后为7个元素的JSON数组，按 day 升序
type WeekSchedule []DaySchedule

// DefaultWeekSchedule 生成默认周排班表，全部禁用
// 数据库中该字段为空（NULL或空数组）时按此形态读回
func DefaultWeekSchedule() WeekSchedule {
	ws := make(WeekSchedule, DaysInWeek)
	for i := range ws {
		ws[i] = DaySchedule{Day: i}
	}
	return ws
}

// EnabledDays 统计启用的天数
func (ws WeekSchedule) EnabledDays() int {
	var n int
	for _, d := range ws {
		if d.Enabled {
			n++
		}
	}
	return n
}
