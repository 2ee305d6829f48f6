package schedule

import (
	"testing"

	"shiftHub/internal/models"
)

// TestParseTimeOfDay 测试 "HH:MM" 与当天分钟数的互转
func TestParseTimeOfDay(t *testing.T) {
	t.Run("合法时间解析并可逆", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"07:00": 420,
			"09:05": 545,
			"12:30": 750,
			"19:00": 1140,
			"23:59": 1439,
		}
		for text, want := range cases {
			got, err := ParseTimeOfDay(text)
			if err != nil {
				t.Errorf("解析 %q 失败: %v", text, err)
				continue
			}
			if got != want {
				t.Errorf("解析 %q 期望 %d，实际 %d", text, want, got)
			}
			if back := FormatMinuteOfDay(got); back != text {
				t.Errorf("往返 %q 期望原样，实际 %q", text, back)
			}
		}
	})

	t.Run("非法时间拒绝", func(t *testing.T) {
		for _, text := range []string{
			"", "0700", "07:00:00", "7:0:0", "ab:cd", "24:00", "-1:30", "12:60", "12:-5", "12.30",
		} {
			if _, err := ParseTimeOfDay(text); err == nil {
				t.Errorf("期望 %q 解析失败，实际成功", text)
			}
		}
	})

	t.Run("格式化越界分钟数直接panic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("期望越界分钟数触发panic")
			}
		}()
		FormatMinuteOfDay(1440)
	})
}

// TestNormalizeDayIdentifier 测试天标识归一化
func TestNormalizeDayIdentifier(t *testing.T) {
	t.Run("整数下标", func(t *testing.T) {
		for i := 0; i < models.DaysInWeek; i++ {
			got, err := NormalizeDayIdentifier(i)
			if err != nil || got != i {
				t.Errorf("下标 %d 归一化失败: got=%d, err=%v", i, got, err)
			}
		}
		// JSON 解码出的数字是 float64
		if got, err := NormalizeDayIdentifier(float64(3)); err != nil || got != 3 {
			t.Errorf("float64 下标归一化失败: got=%d, err=%v", got, err)
		}
	})

	t.Run("天名不区分大小写", func(t *testing.T) {
		cases := map[string]int{
			"monday":    0,
			"Monday":    0,
			"TUESDAY":   1,
			"wednesday": 2,
			"Thursday":  3,
			"friday":    4,
			"Saturday":  5,
			"SUNDAY":    6,
		}
		for name, want := range cases {
			got, err := NormalizeDayIdentifier(name)
			if err != nil {
				t.Errorf("天名 %q 归一化失败: %v", name, err)
				continue
			}
			if got != want {
				t.Errorf("天名 %q 期望 %d，实际 %d", name, want, got)
			}
		}
	})

	t.Run("非法标识拒绝", func(t *testing.T) {
		for _, v := range []interface{}{7, -1, 2.5, "montag", "", nil, true} {
			if _, err := NormalizeDayIdentifier(v); err == nil {
				t.Errorf("期望标识 %v 归一化失败，实际成功", v)
			}
		}
	})
}

// TestNormalize 测试原始条目到规范周排班表的归一化
func TestNormalize(t *testing.T) {
	t.Run("缺省天补为禁用且输出恒为7条", func(t *testing.T) {
		for _, raw := range [][]RawEntry{
			nil,
			{},
			{{Day: "monday", Enabled: true, Start: "07:00", End: "19:00"}},
		} {
			ws, err := Normalize(raw)
			if err != nil {
				t.Errorf("归一化失败: %v", err)
				continue
			}
			if len(ws) != models.DaysInWeek {
				t.Errorf("期望输出7条，实际 %d 条", len(ws))
			}
			for i, d := range ws {
				if d.Day != i {
					t.Errorf("第 %d 条期望 day=%d，实际 %d", i, i, d.Day)
				}
			}
		}
	})

	t.Run("字符串与数字分钟两种形态等价", func(t *testing.T) {
		a, err := Normalize([]RawEntry{{Day: 0, Enabled: true, Start: "07:00", End: "19:00"}})
		if err != nil {
			t.Fatalf("字符串形态归一化失败: %v", err)
		}
		b, err := Normalize([]RawEntry{{Day: 0, Enabled: true, Start: float64(420), End: float64(1140)}})
		if err != nil {
			t.Fatalf("数字形态归一化失败: %v", err)
		}
		if a[0] != b[0] {
			t.Errorf("期望两种形态结果一致，实际 %+v != %+v", a[0], b[0])
		}
		if a[0].StartMinute != 420 || a[0].EndMinute != 1140 {
			t.Errorf("分钟数换算错误: %+v", a[0])
		}
	})

	t.Run("禁用条目分钟数归零", func(t *testing.T) {
		ws, err := Normalize([]RawEntry{
			{Day: "saturday", Enabled: false},
			{Day: "sunday", Enabled: false},
			{Day: 0, Enabled: true, Start: "08:00", End: "17:00"},
		})
		if err != nil {
			t.Fatalf("归一化失败: %v", err)
		}
		for _, day := range []int{5, 6} {
			d := ws[day]
			if d.Enabled || d.StartMinute != 0 || d.EndMinute != 0 {
				t.Errorf("%s 期望禁用且分钟归零，实际 %+v", models.DayNames[day], d)
			}
		}
	})

	t.Run("重复天整体失败", func(t *testing.T) {
		_, err := Normalize([]RawEntry{
			{Day: "monday", Enabled: true, Start: "07:00", End: "19:00"},
			{Day: 0, Enabled: false},
		})
		if err == nil {
			t.Errorf("期望重复天归一化失败，实际成功")
		}
		if models.KindOf(err) != models.ErrKindInvalidSchedule {
			t.Errorf("期望错误类型 %s，实际 %s", models.ErrKindInvalidSchedule, models.KindOf(err))
		}
	})

	t.Run("起止相等整体失败", func(t *testing.T) {
		_, err := Normalize([]RawEntry{
			{Day: 2, Enabled: true, Start: "09:00", End: "09:00"},
		})
		if err == nil {
			t.Errorf("期望起止相等归一化失败，实际成功")
		}
	})

	t.Run("非法天或时间整体失败", func(t *testing.T) {
		for _, raw := range [][]RawEntry{
			{{Day: "someday", Enabled: true, Start: "07:00", End: "19:00"}},
			{{Day: 9, Enabled: false}},
			{{Day: 1, Enabled: true, Start: "25:00", End: "19:00"}},
			{{Day: 1, Enabled: true, Start: "07:00", End: float64(1440)}},
			{{Day: 1, Enabled: true, Start: nil, End: "19:00"}},
		} {
			if _, err := Normalize(raw); err == nil {
				t.Errorf("期望归一化失败，实际成功: %+v", raw)
			}
		}
	})
}
