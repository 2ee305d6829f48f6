package orgtree

import (
	"strconv"
	"strings"
	"testing"

	"shiftHub/internal/models"
)

// TestDetectCycle 测试写路径的环路硬校验
func TestDetectCycle(t *testing.T) {
	// 既有汇报链: B -> A, C -> B
	edges := map[string]string{
		"B": "A",
		"C": "B",
	}

	t.Run("自指直接拒绝", func(t *testing.T) {
		err := DetectCycle("A", "A", edges)
		if models.KindOf(err) != models.ErrKindSelfReference {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindSelfReference, err)
		}
		// 空汇报边下自指同样拒绝
		err = DetectCycle("X", "X", map[string]string{})
		if models.KindOf(err) != models.ErrKindSelfReference {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindSelfReference, err)
		}
	})

	t.Run("候选在被改用户的下游链上则成环", func(t *testing.T) {
		// 给 A 设置汇报对象 C，会形成 A -> C -> B -> A
		err := DetectCycle("C", "A", edges)
		if models.KindOf(err) != models.ErrKindCycleDetected {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindCycleDetected, err)
		}
		// 直接下属同样成环
		err = DetectCycle("B", "A", edges)
		if models.KindOf(err) != models.ErrKindCycleDetected {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindCycleDetected, err)
		}
	})

	t.Run("链外节点放行", func(t *testing.T) {
		if err := DetectCycle("D", "A", edges); err != nil {
			t.Errorf("期望链外候选放行，实际 %v", err)
		}
		// C 给自己换上游 A 不成环
		if err := DetectCycle("A", "C", edges); err != nil {
			t.Errorf("期望沿链上移放行，实际 %v", err)
		}
	})

	t.Run("存量脏环触发环路错误而非死循环", func(t *testing.T) {
		dirty := map[string]string{
			"A": "B",
			"B": "A",
		}
		err := DetectCycle("A", "X", dirty)
		if models.KindOf(err) != models.ErrKindCycleDetected {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindCycleDetected, err)
		}
	})

	t.Run("超长汇报链触发深度上限", func(t *testing.T) {
		long := make(map[string]string, MaxChainDepth+10)
		for i := 0; i < MaxChainDepth+10; i++ {
			long["u"+strconv.Itoa(i)] = "u" + strconv.Itoa(i+1)
		}
		err := DetectCycle("u0", "subject", long)
		if models.KindOf(err) != models.ErrKindDepthLimitExceeded {
			t.Errorf("期望错误类型 %s，实际 %v", models.ErrKindDepthLimitExceeded, err)
		}
	})
}

// TestBuildForest 测试展示用汇报森林的构建
func TestBuildForest(t *testing.T) {
	member := func(userId, realName string, manager models.ManagerRef) models.Member {
		return models.Member{UserId: userId, UserName: userId, RealName: realName, Manager: manager}
	}

	t.Run("基本树形与排序", func(t *testing.T) {
		members := []models.Member{
			member("a", "Alice", models.ManagerNone()),
			member("c", "Carol", models.ManagerUser("a")),
			member("b", "Bob", models.ManagerUser("a")),
			member("d", "Dave", models.ManagerUser("b")),
		}
		roots := BuildForest(members)
		if len(roots) != 1 {
			t.Fatalf("期望1个根节点，实际 %d", len(roots))
		}
		root := roots[0]
		if root.UserId != "a" || root.DisplayName != "Alice" {
			t.Errorf("根节点错误: %+v", root)
		}
		if len(root.Children) != 2 {
			t.Fatalf("期望根下2个子节点，实际 %d", len(root.Children))
		}
		// 子节点按展示名排序
		if root.Children[0].DisplayName != "Bob" || root.Children[1].DisplayName != "Carol" {
			t.Errorf("子节点排序错误: %s, %s", root.Children[0].DisplayName, root.Children[1].DisplayName)
		}
		if len(root.Children[0].Children) != 1 || root.Children[0].Children[0].UserId != "d" {
			t.Errorf("孙节点挂载错误: %+v", root.Children[0].Children)
		}
		if Count(roots) != len(members) {
			t.Errorf("期望节点总数 %d，实际 %d", len(members), Count(roots))
		}
	})

	t.Run("标签伪节点为根且带哨兵前缀", func(t *testing.T) {
		members := []models.Member{
			member("a", "Alice", models.ManagerLabel("华东值班区")),
			member("b", "Bob", models.ManagerLabel(" 华东值班区 ")),
			member("c", "Carol", models.ManagerNone()),
		}
		roots := BuildForest(members)
		if len(roots) != 2 {
			t.Fatalf("期望2个根节点，实际 %d", len(roots))
		}
		var labelRoot *Node
		for _, r := range roots {
			if r.IsLabel {
				labelRoot = r
			}
		}
		if labelRoot == nil {
			t.Fatalf("期望存在标签伪节点根")
		}
		if labelRoot.DisplayName != "华东值班区" {
			t.Errorf("标签展示名期望裁剪空白，实际 %q", labelRoot.DisplayName)
		}
		if !strings.HasPrefix(labelRoot.UserId, "label:") {
			t.Errorf("标签节点ID期望哨兵前缀，实际 %q", labelRoot.UserId)
		}
		// 空白差异的同名标签归并到同一伪节点
		if len(labelRoot.Children) != 2 {
			t.Errorf("期望标签下2个子节点，实际 %d", len(labelRoot.Children))
		}
		// 标签伪节点不计入用户数
		if Count(roots) != 3 {
			t.Errorf("期望用户节点数3，实际 %d", Count(roots))
		}
	})

	t.Run("汇报对象已失效的用户按根处理", func(t *testing.T) {
		members := []models.Member{
			member("a", "Alice", models.ManagerUser("ghost")),
		}
		roots := BuildForest(members)
		if len(roots) != 1 || roots[0].UserId != "a" {
			t.Fatalf("期望失效引用降级为根，实际 %+v", roots)
		}
	})

	t.Run("存量脏环降级展示不丢节点", func(t *testing.T) {
		members := []models.Member{
			member("a", "Alice", models.ManagerUser("b")),
			member("b", "Bob", models.ManagerUser("a")),
			member("c", "Carol", models.ManagerNone()),
		}
		roots := BuildForest(members)
		// 整环没有天然根，环内节点按降级根挂出，总数不缩水
		if Count(roots) != len(members) {
			t.Fatalf("期望节点总数 %d，实际 %d", len(members), Count(roots))
		}
		seen := map[string]bool{}
		var walk func(nodes []*Node)
		walk = func(nodes []*Node) {
			for _, n := range nodes {
				seen[n.UserId] = true
				walk(n.Children)
			}
		}
		walk(roots)
		for _, id := range []string{"a", "b", "c"} {
			if !seen[id] {
				t.Errorf("期望节点 %s 出现在森林中，实际缺失", id)
			}
		}
	})

	t.Run("空输入得空森林", func(t *testing.T) {
		if roots := BuildForest(nil); len(roots) != 0 {
			t.Errorf("期望空森林，实际 %d 个根", len(roots))
		}
	})
}
