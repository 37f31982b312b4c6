package biz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/investor_insight/internal/domain"
)

func fullSubmission() domain.Submission {
	return domain.Submission{
		FullName:      "Alice Tan",
		ChineseName:   "陈爱丽",
		Dob:           "1990-05-01",
		Company:       "Acme Pte Ltd",
		Role:          "CEO",
		Country:       "新加坡",
		Experience:    "5",
		Industry:      "金融",
		Challenge:     "融资",
		Context:       "A轮",
		TargetProfile: "天使投资人",
		Advisor:       "Bob",
		Email:         "a@b.com",
	}
}

func TestAssembler_FullContainsEveryField(t *testing.T) {
	a := NewAssembler(mustLocale())
	sub := fullSubmission()
	r := a.Assemble(sub, "<metrics>", "<narrative>", "<tips>")
	full := r.Full()

	l := mustLocale().Labels
	pairs := map[string]domain.Text{
		l.FullName: sub.FullName, l.ChineseName: sub.ChineseName, l.Dob: sub.Dob,
		l.Country: sub.Country, l.Company: sub.Company, l.Role: sub.Role,
		l.Experience: sub.Experience, l.Industry: sub.Industry, l.Challenge: sub.Challenge,
		l.Context: sub.Context, l.TargetProfile: sub.TargetProfile, l.Advisor: sub.Advisor,
		l.Email: sub.Email,
	}
	for label, value := range pairs {
		assert.Contains(t, full, label+": "+value.String())
	}
	assert.Contains(t, full, "📝 提交摘要")
}

func TestAssembler_PublicOmitsOnlyDetails(t *testing.T) {
	a := NewAssembler(mustLocale())
	r := a.Assemble(fullSubmission(), "<metrics>", "<narrative>", "<tips>")

	full, public := r.Full(), r.Public()
	assert.Contains(t, full, r.Details)
	assert.Equal(t, public, strings.Replace(full, r.Details, "", 1))
	assert.NotContains(t, public, "a@b.com")
	assert.NotContains(t, public, "📝 提交摘要")

	// order: title, metrics, narrative, tips, footer
	assert.True(t, strings.HasPrefix(public, "<h4 style='text-align:center;font-size:24px;'>🎯 投资人洞察报告</h4><metrics><narrative><tips>"))
	assert.True(t, strings.HasSuffix(public, reportFooter))
	assert.Contains(t, r.Footer, "PDPA")
	assert.Contains(t, r.Footer, "24 至 48 小时")
}

func TestAssembler_EscapesSubmission(t *testing.T) {
	sub := fullSubmission()
	sub.Company = "<b>Acme</b>"
	r := NewAssembler(mustLocale()).Assemble(sub, "", "", "")
	assert.Contains(t, r.Details, "&lt;b&gt;Acme&lt;/b&gt;")
}
