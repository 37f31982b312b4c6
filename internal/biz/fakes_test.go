package biz

import (
	"context"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
)

type fakeCompletion struct {
	text string
	err  error

	mu          sync.Mutex
	prompts     []string
	temperature float32
}

func (f *fakeCompletion) Complete(_ context.Context, prompt string, temperature float32) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.temperature = temperature
	return f.text, f.err
}

type fakeMail struct {
	err error

	mu    sync.Mutex
	sent  []string
	subj  []string
	calls int
}

func (f *fakeMail) Send(_ context.Context, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.subj = append(f.subj, subject)
	f.sent = append(f.sent, htmlBody)
	return f.err
}

func testLogger() log.Logger {
	return log.DefaultLogger
}

func mustLocale() *Locale {
	l, err := LoadLocale("zh")
	if err != nil {
		panic(err)
	}
	return l
}
