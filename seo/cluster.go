package seo

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Similarity 返回两个话题之间的 Sørensen–Dice 相似度（二元组，不区分大小写），范围 [0,1]。
func Similarity(a, b string) float64 {
	dice := metrics.NewSorensenDice()
	dice.CaseSensitive = false
	dice.NgramSize = 2
	return strutil.Similarity(strings.TrimSpace(a), strings.TrimSpace(b), dice)
}

// ClusterTopics 将话题聚成若干组：两组中只要存在一对成员相似度大于 threshold 就合并，
// 反复执行直到没有可合并的组。空白话题与重复话题（不区分大小写）会被忽略。
// 组的顺序按组内最早出现的话题排列，组内成员保持输入顺序。
func ClusterTopics(topics []string, threshold float64) [][]string {
	seen := make(map[string]struct{}, len(topics))
	groups := make([][]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		groups = append(groups, []string{t})
	}
	return MergeGroups(groups, threshold)
}

// MergeGroups 在已有分组上继续合并，直到不动点。对自身的输出再次调用不会产生新的合并。
func MergeGroups(groups [][]string, threshold float64) [][]string {
	// 记录每个话题的原始位置，合并后按位置排序以保持插入顺序
	type member struct {
		topic string
		pos   int
	}
	work := make([][]member, 0, len(groups))
	pos := 0
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		ms := make([]member, 0, len(g))
		for _, t := range g {
			ms = append(ms, member{topic: t, pos: pos})
			pos++
		}
		work = append(work, ms)
	}

	similar := func(a, b []member) bool {
		for _, x := range a {
			for _, y := range b {
				if Similarity(x.topic, y.topic) > threshold {
					return true
				}
			}
		}
		return false
	}

	for merged := true; merged; {
		merged = false
		for i := 0; i < len(work) && !merged; i++ {
			for j := i + 1; j < len(work); j++ {
				if similar(work[i], work[j]) {
					work[i] = append(work[i], work[j]...)
					work = append(work[:j], work[j+1:]...)
					merged = true
					break
				}
			}
		}
	}

	out := make([][]string, 0, len(work))
	for _, ms := range work {
		sort.SliceStable(ms, func(a, b int) bool { return ms[a].pos < ms[b].pos })
		g := make([]string, 0, len(ms))
		for _, m := range ms {
			g = append(g, m.topic)
		}
		out = append(out, g)
	}
	return out
}
