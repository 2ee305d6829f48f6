package orgtree

import (
	"sort"
	"strings"

	"shiftHub/internal/models"
)

// MaxChainDepth 汇报链遍历的深度上限
// 超出视为数据完整性故障而非死循环等待
const MaxChainDepth = 1000

// labelIdPrefix 标签伪节点的哨兵标识前缀，保证与任何真实用户ID不冲突
const labelIdPrefix = "label:"

// Node 汇报关系树节点
// IsLabel 为 true 时该节点由自由文本标签合成，无真实用户
type Node struct {
	UserId      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	IsLabel     bool    `json:"isLabel"`
	Children    []*Node `json:"children,omitempty"`
}

// DetectCycle 汇报对象变更前的环路硬校验
// edges 为 userId -> managerUserId 的汇报边
// 从候选汇报对象出发沿汇报链上行，访问集合以被修改用户预置，
// 命中已访问节点即为成环；自指在遍历前单独拒绝
func DetectCycle(candidateManagerId, subjectUserId string, edges map[string]string) error {
	if candidateManagerId == subjectUserId {
		return models.NewSelfReferenceError("不能将自己设置为汇报对象")
	}

	visited := map[string]bool{subjectUserId: true}
	cur := candidateManagerId
	for depth := 0; cur != ""; depth++ {
		if depth >= MaxChainDepth {
			return models.NewDepthLimitError("汇报链超出深度上限, 疑似数据异常")
		}
		if visited[cur] {
			return models.NewCycleError("该变更会在汇报链中引入环路")
		}
		visited[cur] = true
		cur = edges[cur]
	}

	return nil
}

// BuildForest 由用户集合构建展示用汇报关系森林
// 只读展示路径，对成环或残缺数据降级处理而不报错：
// 回边截断、整环节点按降级根挂出，保证展示不丢节点；
// 环路本应在写路径被 DetectCycle 拦截，这里仅做兜底
func BuildForest(members []models.Member) []*Node {
	nodes := make(map[string]*Node, len(members))
	for _, m := range members {
		nodes[m.UserId] = &Node{
			UserId:      m.UserId,
			DisplayName: m.DisplayName(),
		}
	}

	// 按汇报对象分桶：用户ID桶与标签桶（标签裁剪空白后作键）
	childrenByManager := make(map[string][]string)
	childrenByLabel := make(map[string][]string)
	hasManager := make(map[string]bool)

	for _, m := range members {
		switch {
		case m.Manager.Type == models.ManagerRefUser && m.Manager.UserId != "":
			if _, ok := nodes[m.Manager.UserId]; ok {
				childrenByManager[m.Manager.UserId] = append(childrenByManager[m.Manager.UserId], m.UserId)
				hasManager[m.UserId] = true
			}
			// 汇报对象已不存在时按根处理，展示不丢节点
		case m.Manager.Type == models.ManagerRefLabel && strings.TrimSpace(m.Manager.Label) != "":
			label := strings.TrimSpace(m.Manager.Label)
			childrenByLabel[label] = append(childrenByLabel[label], m.UserId)
			hasManager[m.UserId] = true
		}
	}

	visited := make(map[string]bool, len(members))
	var assemble func(userId string) *Node
	assemble = func(userId string) *Node {
		if visited[userId] {
			// 脏数据成环，截断该分支
			return nil
		}
		visited[userId] = true

		node := nodes[userId]
		for _, childId := range childrenByManager[userId] {
			if child := assemble(childId); child != nil {
				node.Children = append(node.Children, child)
			}
		}
		sortByDisplayName(node.Children)
		return node
	}

	var roots []*Node

	// 标签伪节点：无入边，必为根
	labels := make([]string, 0, len(childrenByLabel))
	for label := range childrenByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		labelNode := &Node{
			UserId:      labelIdPrefix + label,
			DisplayName: label,
			IsLabel:     true,
		}
		for _, childId := range childrenByLabel[label] {
			if child := assemble(childId); child != nil {
				labelNode.Children = append(labelNode.Children, child)
			}
		}
		sortByDisplayName(labelNode.Children)
		roots = append(roots, labelNode)
	}

	// 无汇报对象（或汇报对象已失效）的用户为根
	for _, m := range members {
		if hasManager[m.UserId] || visited[m.UserId] {
			continue
		}
		if root := assemble(m.UserId); root != nil {
			roots = append(roots, root)
		}
	}

	// 整环脏数据没有天然根（环内节点都有入边），
	// 剩余未访问的节点按降级根挂出，展示不丢节点
	for _, m := range members {
		if visited[m.UserId] {
			continue
		}
		if root := assemble(m.UserId); root != nil {
			roots = append(roots, root)
		}
	}

	sortByDisplayName(roots)
	return roots
}

// Count 统计森林的总节点数（不含标签伪节点）
func Count(roots []*Node) int {
	var n int
	for _, r := range roots {
		if !r.IsLabel {
			n++
		}
		n += Count(r.Children)
	}
	return n
}

func sortByDisplayName(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].DisplayName != nodes[j].DisplayName {
			return nodes[i].DisplayName < nodes[j].DisplayName
		}
		return nodes[i].UserId < nodes[j].UserId
	})
}
