package services

import (
	"errors"
	"testing"

	"shiftHub/internal/models"
)

// guardStub 构造可控的检查链，并记录实际的调用顺序
func guardStub(calls *[]string, results map[string]bool) assignmentGuard {
	step := func(name string) func() (bool, error) {
		return func() (bool, error) {
			*calls = append(*calls, name)
			return results[name], nil
		}
	}
	return assignmentGuard{
		groupExists: step("group"),
		deptExists:  step("dept"),
		userExists:  step("user"),
		isMember:    step("member"),
		assigned:    step("assigned"),
	}
}

// TestAssignmentGuard 测试分配资格检查链的顺序与短路行为
func TestAssignmentGuard(t *testing.T) {
	allPass := map[string]bool{
		"group": true, "dept": true, "user": true, "member": true, "assigned": false,
	}

	t.Run("全部通过且顺序固定", func(t *testing.T) {
		var calls []string
		if err := guardStub(&calls, allPass).check(); err != nil {
			t.Fatalf("期望检查通过，实际 %v", err)
		}
		want := []string{"group", "dept", "user", "member", "assigned"}
		if len(calls) != len(want) {
			t.Fatalf("期望调用 %d 次，实际 %d 次: %v", len(want), len(calls), calls)
		}
		for i := range want {
			if calls[i] != want[i] {
				t.Errorf("第 %d 步期望 %s，实际 %s", i, want[i], calls[i])
			}
		}
	})

	t.Run("逐步短路与对应错误类型", func(t *testing.T) {
		cases := []struct {
			name       string
			fail       string
			wantKind   string
			wantEntity string
			wantCalls  int
		}{
			{"路由组缺失", "group", models.ErrKindNotFound, models.EntityGroup, 1},
			{"部门缺失", "dept", models.ErrKindNotFound, models.EntityDepartment, 2},
			{"用户缺失", "user", models.ErrKindNotFound, models.EntityUser, 3},
			{"未入部门", "member", models.ErrKindPreconditionFailed, "", 4},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				results := map[string]bool{}
				for k, v := range allPass {
					results[k] = v
				}
				results[c.fail] = false

				var calls []string
				err := guardStub(&calls, results).check()
				if models.KindOf(err) != c.wantKind {
					t.Errorf("期望错误类型 %s，实际 %v", c.wantKind, err)
				}
				var ae *models.AppError
				if errors.As(err, &ae) && ae.Entity != c.wantEntity {
					t.Errorf("期望实体 %q，实际 %q", c.wantEntity, ae.Entity)
				}
				if len(calls) != c.wantCalls {
					t.Errorf("期望短路于第 %d 步，实际调用 %v", c.wantCalls, calls)
				}
			})
		}
	})

	t.Run("重复分配报冲突", func(t *testing.T) {
		results := map[string]bool{
			"group": true, "dept": true, "user": true, "member": true, "assigned": true,
		}
		var calls []string
		err := guardStub(&calls, results).check()
		if models.KindOf(err) != models.ErrKindConflict {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindConflict, err)
		}
	})

	t.Run("既未入部门又已有分配时成员检查优先", func(t *testing.T) {
		// "先入部门，后排班"：两项同时不满足必须报前置条件错误
		results := map[string]bool{
			"group": true, "dept": true, "user": true, "member": false, "assigned": true,
		}
		var calls []string
		err := guardStub(&calls, results).check()
		if models.KindOf(err) != models.ErrKindPreconditionFailed {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindPreconditionFailed, err)
		}
		for _, name := range calls {
			if name == "assigned" {
				t.Errorf("期望成员检查短路后不再查重复，实际调用 %v", calls)
			}
		}
	})

	t.Run("查询错误原样上抛", func(t *testing.T) {
		boom := errors.New("db down")
		g := assignmentGuard{
			groupExists: func() (bool, error) { return true, nil },
			deptExists:  func() (bool, error) { return false, boom },
			userExists:  func() (bool, error) { t.Fatal("不应执行到用户检查"); return false, nil },
			isMember:    func() (bool, error) { return false, nil },
			assigned:    func() (bool, error) { return false, nil },
		}
		if err := g.check(); !errors.Is(err, boom) {
			t.Errorf("期望底层错误原样返回，实际 %v", err)
		}
	})
}
