package checkers

import (
	"context"
	"errors"
)

// LLMChecker verifies the completion API is usable. It only inspects the
// configured credentials; a readiness probe must not spend model tokens.
type LLMChecker struct {
	apiKey string
}

func NewLLMChecker(apiKey string) *LLMChecker {
	return &LLMChecker{apiKey: apiKey}
}

func (c *LLMChecker) Name() string { return "llm" }

func (c *LLMChecker) Check(_ context.Context) error {
	if c.apiKey == "" {
		return errors.New("api key is not configured")
	}
	return nil
}
