package service

import (
	"context"
	"errors"
)

// completerCall records one request made against the fake backend
type completerCall struct {
	system      string
	user        string
	temperature float64
	maxTokens   int
}

// fakeCompleter is a scripted stand-in for the LLM backend. Responses are
// consumed in call order; err makes every call fail.
type fakeCompleter struct {
	err       error
	responses []string
	calls     []completerCall
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	f.calls = append(f.calls, completerCall{system: system, user: user, temperature: temperature, maxTokens: maxTokens})
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r, nil
}

func failingCompleter() *fakeCompleter {
	return &fakeCompleter{err: errors.New("backend unavailable")}
}
