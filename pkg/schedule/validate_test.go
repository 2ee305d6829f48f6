package schedule

import (
	"testing"

	"shiftHub/internal/models"
)

func weekWith(days ...models.DaySchedule) models.WeekSchedule {
	ws := models.DefaultWeekSchedule()
	for _, d := range days {
		ws[d.Day] = d
	}
	return ws
}

// TestValidate 测试周排班表的规则校验
func TestValidate(t *testing.T) {
	t.Run("工作日白班通过", func(t *testing.T) {
		ws := weekWith(
			models.DaySchedule{Day: 0, Enabled: true, StartMinute: 420, EndMinute: 1140},
			models.DaySchedule{Day: 1, Enabled: true, StartMinute: 420, EndMinute: 1140},
			models.DaySchedule{Day: 2, Enabled: true, StartMinute: 420, EndMinute: 1140},
			models.DaySchedule{Day: 3, Enabled: true, StartMinute: 420, EndMinute: 1140},
			models.DaySchedule{Day: 4, Enabled: true, StartMinute: 420, EndMinute: 1140},
		)
		if err := Validate(ws); err != nil {
			t.Errorf("期望校验通过，实际 %v", err)
		}
	})

	t.Run("跨午夜窗口按反转区间通过", func(t *testing.T) {
		// 22:00 -> 06:00，起晚于止是合法的跨夜形态
		ws := weekWith(models.DaySchedule{Day: 4, Enabled: true, StartMinute: 1320, EndMinute: 360})
		if err := Validate(ws); err != nil {
			t.Errorf("期望跨夜窗口通过，实际 %v", err)
		}
	})

	t.Run("边界分钟通过", func(t *testing.T) {
		ws := weekWith(models.DaySchedule{Day: 6, Enabled: true, StartMinute: 0, EndMinute: 1439})
		if err := Validate(ws); err != nil {
			t.Errorf("期望边界分钟通过，实际 %v", err)
		}
	})

	t.Run("全禁用拒绝", func(t *testing.T) {
		err := Validate(models.DefaultWeekSchedule())
		if models.KindOf(err) != models.ErrKindInvalidSchedule {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindInvalidSchedule, err)
		}
	})

	t.Run("条目数不是7拒绝", func(t *testing.T) {
		for _, ws := range []models.WeekSchedule{
			nil,
			{},
			models.DefaultWeekSchedule()[:6],
			append(models.DefaultWeekSchedule(), models.DaySchedule{Day: 0}),
		} {
			if err := Validate(ws); err == nil {
				t.Errorf("期望 %d 条记录校验失败，实际通过", len(ws))
			}
		}
	})

	t.Run("重复天拒绝", func(t *testing.T) {
		ws := models.DefaultWeekSchedule()
		ws[6] = models.DaySchedule{Day: 0, Enabled: true, StartMinute: 60, EndMinute: 120}
		if err := Validate(ws); err == nil {
			t.Errorf("期望重复天校验失败，实际通过")
		}
	})

	t.Run("启用天起止相等拒绝", func(t *testing.T) {
		ws := weekWith(models.DaySchedule{Day: 3, Enabled: true, StartMinute: 600, EndMinute: 600})
		if err := Validate(ws); err == nil {
			t.Errorf("期望起止相等校验失败，实际通过")
		}
	})

	t.Run("启用天分钟越界拒绝", func(t *testing.T) {
		for _, d := range []models.DaySchedule{
			{Day: 1, Enabled: true, StartMinute: -1, EndMinute: 600},
			{Day: 1, Enabled: true, StartMinute: 600, EndMinute: 1440},
			{Day: 1, Enabled: true, StartMinute: 2000, EndMinute: 600},
		} {
			if err := Validate(weekWith(d)); err == nil {
				t.Errorf("期望越界分钟校验失败，实际通过: %+v", d)
			}
		}
	})

	t.Run("禁用天分钟不做校验", func(t *testing.T) {
		// 禁用天分钟字段不参与窗口判断
		ws := weekWith(
			models.DaySchedule{Day: 0, Enabled: true, StartMinute: 420, EndMinute: 1140},
		)
		ws[5] = models.DaySchedule{Day: 5, Enabled: false, StartMinute: 9999, EndMinute: 9999}
		if err := Validate(ws); err != nil {
			t.Errorf("期望禁用天分钟不校验，实际 %v", err)
		}
	})
}
