package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_Empty(t *testing.T) {
	var bc Bootstrap
	bc.ApplyDefaults()

	require.NotNil(t, bc.Server.Http)
	assert.Equal(t, "0.0.0.0:8000", bc.Server.Http.Addr)
	assert.Equal(t, "gpt-3.5-turbo", bc.LLM.Model)
	assert.Equal(t, "smtp.gmail.com", bc.Mail.Host)
	assert.EqualValues(t, 587, bc.Mail.Port)
	assert.Equal(t, "zh", bc.Report.Language)
	assert.EqualValues(t, 5, bc.LLM.Concurrency.Qps)
}

func TestApplyDefaults_RecipientFallsBackToSender(t *testing.T) {
	bc := Bootstrap{Mail: &Mail{Username: "audit@example.com"}}
	bc.ApplyDefaults()
	assert.Equal(t, "audit@example.com", bc.Mail.To)

	bc = Bootstrap{Mail: &Mail{Username: "audit@example.com", To: "ops@example.com"}}
	bc.ApplyDefaults()
	assert.Equal(t, "ops@example.com", bc.Mail.To)
}

func TestParseTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseTimeout("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseTimeout("", time.Minute))
	assert.Equal(t, time.Minute, ParseTimeout("abc", time.Minute))
	assert.Equal(t, time.Minute, ParseTimeout("-1s", time.Minute))
}
