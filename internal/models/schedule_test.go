package models

import (
	"encoding/json"
	"testing"
)

// TestDefaultWeekSchedule 测试默认周排班表形态
func TestDefaultWeekSchedule(t *testing.T) {
	ws := DefaultWeekSchedule()
	if len(ws) != DaysInWeek {
		t.Fatalf("期望7条记录，实际 %d", len(ws))
	}
	for i, d := range ws {
		if d.Day != i {
			t.Errorf("第 %d 条期望 day=%d，实际 %d", i, i, d.Day)
		}
		if d.Enabled || d.StartMinute != 0 || d.EndMinute != 0 {
			t.Errorf("%s 期望禁用且分钟归零，实际 %+v", DayNames[i], d)
		}
	}
	if ws.EnabledDays() != 0 {
		t.Errorf("期望启用天数0，实际 %d", ws.EnabledDays())
	}
}

// TestAssignmentScheduleJSON 测试分配记录的排班字段JSON往返
func TestAssignmentScheduleJSON(t *testing.T) {
	// 工作日 07:00-19:00 白班
	ws := DefaultWeekSchedule()
	for day := 0; day < 5; day++ {
		ws[day] = DaySchedule{Day: day, Enabled: true, StartMinute: 420, EndMinute: 1140}
	}

	src := Assignment{
		TenantId:     "tid-1",
		UserId:       "uid-1",
		GroupId:      "gid-1",
		DepartmentId: "did-1",
		Schedule:     ws,
		AddedAt:      1724544000,
		UpdateBy:     "admin",
		UpdateAt:     1724544000,
	}

	raw, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	var dst Assignment
	if err := json.Unmarshal(raw, &dst); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}

	if len(dst.Schedule) != DaysInWeek {
		t.Fatalf("期望排班7条，实际 %d", len(dst.Schedule))
	}
	for i := range ws {
		if dst.Schedule[i] != ws[i] {
			t.Errorf("第 %d 条往返不一致: 期望 %+v，实际 %+v", i, ws[i], dst.Schedule[i])
		}
	}
	if dst.Schedule.EnabledDays() != 5 {
		t.Errorf("期望启用天数5，实际 %d", dst.Schedule.EnabledDays())
	}
	if dst.TenantId != src.TenantId || dst.UserId != src.UserId {
		t.Errorf("主键字段往返不一致: %+v", dst)
	}
}

// TestManagerRef 测试汇报对象引用的三态与JSON形态
func TestManagerRef(t *testing.T) {
	t.Run("构造函数互斥", func(t *testing.T) {
		if m := ManagerNone(); !m.IsNone() || m.UserId != "" || m.Label != "" {
			t.Errorf("ManagerNone 形态错误: %+v", m)
		}
		if m := ManagerUser("u1"); m.Type != ManagerRefUser || m.UserId != "u1" || m.Label != "" {
			t.Errorf("ManagerUser 形态错误: %+v", m)
		}
		if m := ManagerLabel("  华东值班区  "); m.Type != ManagerRefLabel || m.Label != "华东值班区" || m.UserId != "" {
			t.Errorf("ManagerLabel 形态错误: %+v", m)
		}
	})

	t.Run("历史空类型视为未设置", func(t *testing.T) {
		var m ManagerRef
		if err := json.Unmarshal([]byte(`{}`), &m); err != nil {
			t.Fatalf("反序列化失败: %v", err)
		}
		if !m.IsNone() {
			t.Errorf("期望空对象视为未设置，实际 %+v", m)
		}
	})

	t.Run("JSON往返", func(t *testing.T) {
		for _, m := range []ManagerRef{ManagerNone(), ManagerUser("u1"), ManagerLabel("一线值班")} {
			raw, err := json.Marshal(m)
			if err != nil {
				t.Fatalf("序列化失败: %v", err)
			}
			var back ManagerRef
			if err := json.Unmarshal(raw, &back); err != nil {
				t.Fatalf("反序列化失败: %v", err)
			}
			if back != m {
				t.Errorf("往返不一致: 期望 %+v，实际 %+v", m, back)
			}
		}
	})
}
