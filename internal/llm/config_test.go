package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ModelName(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default", Config{APIKey: "k"}, DefaultModel},
		{"explicit model", Config{APIKey: "k", Model: "gemini-2.5-pro"}, "gemini-2.5-pro"},
		{
			"managed deployment wins",
			Config{APIKey: "k", Model: "gemini-2.5-pro", Endpoint: "https://llm.internal", Deployment: "resume-gpt"},
			"resume-gpt",
		},
		{
			"deployment ignored without endpoint",
			Config{APIKey: "k", Model: "gemini-2.5-pro", Deployment: "resume-gpt"},
			"gemini-2.5-pro",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ModelName())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate(), "api key is required")
	assert.Error(t, (&Config{APIKey: "k", Deployment: "d"}).Validate(), "deployment requires endpoint")
	assert.NoError(t, (&Config{APIKey: "k"}).Validate())
	assert.NoError(t, (&Config{APIKey: "k", Endpoint: "https://llm.internal", APIVersion: "2024-06-01", Deployment: "d"}).Validate())
}
