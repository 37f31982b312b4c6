package biz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource 总是返回区间下界或上界
type fixedSource struct{ high bool }

func (f fixedSource) IntRange(lo, hi int) int {
	if f.high {
		return hi
	}
	return lo
}

func TestMetricGenerator_Shape(t *testing.T) {
	groups := NewMetricGenerator(fixedSource{}).Generate()

	require.Len(t, groups, 3)
	assert.Equal(t, "市场定位", groups[0].Title)
	assert.Equal(t, "投资吸引力", groups[1].Title)
	assert.Equal(t, "战略执行力", groups[2].Title)
	assert.Equal(t, []string{"品牌记忆度", "客户契合度", "声誉粘性"}, groups[0].Labels)
	assert.Equal(t, []string{"故事信心度", "扩展性模型", "信任证明度"}, groups[1].Labels)
	assert.Equal(t, []string{"合作准备度", "高端通路运用", "领导影响力"}, groups[2].Labels)
	assert.Equal(t, []int{70, 65, 70}, groups[0].Values)
	assert.Equal(t, []int{70, 60, 75}, groups[1].Values)
	assert.Equal(t, []int{65, 65, 75}, groups[2].Values)

	high := NewMetricGenerator(fixedSource{high: true}).Generate()
	assert.Equal(t, []int{90, 85, 90}, high[0].Values)
	assert.Equal(t, []int{85, 80, 90}, high[1].Values)
	assert.Equal(t, []int{85, 85, 90}, high[2].Values)
}

func TestMetricGenerator_RandomValuesStayInRange(t *testing.T) {
	gen := NewMetricGenerator(NewIntSource())
	for n := 0; n < 1000; n++ {
		groups := gen.Generate()
		require.Len(t, groups, len(metricSpecs))
		for i, g := range groups {
			require.Len(t, g.Labels, 3)
			require.Len(t, g.Values, 3)
			for j, v := range g.Values {
				r := metricSpecs[i].ranges[j]
				require.GreaterOrEqual(t, v, r.Min, "%s/%s", g.Title, g.Labels[j])
				require.LessOrEqual(t, v, r.Max, "%s/%s", g.Title, g.Labels[j])
			}
		}
	}
}

func TestMetricGenerator_GroupsAreIndependentCopies(t *testing.T) {
	gen := NewMetricGenerator(fixedSource{})
	a := gen.Generate()
	a[0].Labels[0] = "changed"
	b := gen.Generate()
	assert.Equal(t, "品牌记忆度", b[0].Labels[0])
}

func TestIntSource_DegenerateRange(t *testing.T) {
	assert.Equal(t, 7, NewIntSource().IntRange(7, 7))
	assert.Equal(t, 7, NewIntSource().IntRange(7, 3))
}
