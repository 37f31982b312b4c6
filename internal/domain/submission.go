package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// IndustryOther 表示行业由 OtherIndustry 自由填写
	IndustryOther = "Other"
	// DefaultIndustry 选择 Other 但未填写时使用的行业名
	DefaultIndustry = "其他"
)

// Text 兼容字符串、数字与 null 的 JSON 字段
type Text string

// UnmarshalJSON 实现 json.Unmarshaler 接口
func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("unsupported field value %s", b)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Submission 一次请求提交的个人/企业资料
type Submission struct {
	FullName      Text `json:"fullName"`
	ChineseName   Text `json:"chineseName"`
	Dob           Text `json:"dob"`
	Company       Text `json:"company"`
	Role          Text `json:"role"`
	Country       Text `json:"country"`
	Experience    Text `json:"experience"`
	Industry      Text `json:"industry"`
	OtherIndustry Text `json:"otherIndustry"`
	Challenge     Text `json:"challenge"`
	Context       Text `json:"context"`
	TargetProfile Text `json:"targetProfile"`
	Advisor       Text `json:"advisor"`
	Email         Text `json:"email"`
}

// Normalize 返回行业归一化后的副本：
// Industry 为 "Other" 时替换为 OtherIndustry，后者为空则使用 DefaultIndustry
func (s Submission) Normalize() Submission {
	if s.Industry != IndustryOther {
		return s
	}
	if other := strings.TrimSpace(s.OtherIndustry.String()); other != "" {
		s.Industry = Text(other)
	} else {
		s.Industry = DefaultIndustry
	}
	return s
}
