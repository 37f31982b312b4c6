package biz

import (
	"math/rand/v2"

	"github.com/iWorld-y/investor_insight/internal/domain"
)

// IntSource 随机整数来源，测试中可替换为确定性实现
type IntSource interface {
	// IntRange 返回闭区间 [lo, hi] 内的整数
	IntRange(lo, hi int) int
}

type mathRandSource struct{}

// NewIntSource 返回基于 math/rand/v2 的默认随机源
func NewIntSource() IntSource {
	return mathRandSource{}
}

func (mathRandSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}

// scoreRange 单项评分的闭区间
type scoreRange struct {
	Min, Max int
}

type metricSpec struct {
	title  string
	labels [3]string
	ranges [3]scoreRange
}

var metricSpecs = [...]metricSpec{
	{
		title:  "市场定位",
		labels: [3]string{"品牌记忆度", "客户契合度", "声誉粘性"},
		ranges: [3]scoreRange{{70, 90}, {65, 85}, {70, 90}},
	},
	{
		title:  "投资吸引力",
		labels: [3]string{"故事信心度", "扩展性模型", "信任证明度"},
		ranges: [3]scoreRange{{70, 85}, {60, 80}, {75, 90}},
	},
	{
		title:  "战略执行力",
		labels: [3]string{"合作准备度", "高端通路运用", "领导影响力"},
		ranges: [3]scoreRange{{65, 85}, {65, 85}, {75, 90}},
	},
}

// MetricGenerator 生成三组固定结构的随机评分
type MetricGenerator struct {
	src IntSource
}

func NewMetricGenerator(src IntSource) *MetricGenerator {
	return &MetricGenerator{src: src}
}

// Generate 每次调用重新抽取全部评分
func (g *MetricGenerator) Generate() []domain.MetricGroup {
	groups := make([]domain.MetricGroup, 0, len(metricSpecs))
	for _, spec := range metricSpecs {
		group := domain.MetricGroup{
			Title:  spec.title,
			Labels: make([]string, len(spec.labels)),
			Values: make([]int, len(spec.ranges)),
		}
		for i := range spec.labels {
			group.Labels[i] = spec.labels[i]
			group.Values[i] = g.src.IntRange(spec.ranges[i].Min, spec.ranges[i].Max)
		}
		groups = append(groups, group)
	}
	return groups
}
