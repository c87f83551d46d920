package intercept_test

import (
	"testing"

	"tgproxy/internal/app/domain/intercept"
)

func TestInterceptor_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		keywords    []string
		method      string
		contentType string
		body        string
		want        bool
	}{
		{"empty keyword list never matches", nil, "POST", "application/json", `{"text":"TRIGGERWORD"}`, false},
		{"keyword in text", []string{"TRIGGERWORD"}, "POST", "application/json", `{"chat_id":42,"text":"contains TRIGGERWORD"}`, true},
		{"keyword in caption", []string{"TRIGGERWORD"}, "POST", "application/json", `{"chat_id":42,"caption":"photo TRIGGERWORD here"}`, true},
		{"text wins over caption", []string{"x"}, "POST", "application/json", `{"text":"has x","caption":"no match"}`, true},
		{"no keyword anywhere", []string{"TRIGGERWORD"}, "POST", "application/json", `{"text":"harmless","caption":"also harmless"}`, false},
		{"case sensitive", []string{"TRIGGERWORD"}, "POST", "application/json", `{"text":"triggerword"}`, false},
		{"substring match", []string{"word"}, "POST", "application/json", `{"text":"keywords"}`, true},
		{"first of several keywords", []string{"a", "b"}, "POST", "application/json", `{"text":"b only"}`, true},
		{"GET never inspected", []string{"TRIGGERWORD"}, "GET", "application/json", `{"text":"TRIGGERWORD"}`, false},
		{"non-json content type", []string{"TRIGGERWORD"}, "POST", "text/plain", `{"text":"TRIGGERWORD"}`, false},
		{"json with charset", []string{"TRIGGERWORD"}, "POST", "application/json; charset=utf-8", `{"text":"TRIGGERWORD"}`, true},
		{"malformed json fails open", []string{"TRIGGERWORD"}, "POST", "application/json", `{"text": TRIGGERWORD`, false},
		{"empty body", []string{"TRIGGERWORD"}, "POST", "application/json", ``, false},
		{"no text or caption", []string{"TRIGGERWORD"}, "POST", "application/json", `{"chat_id":42}`, false},
		{"non-string text field", []string{"42"}, "POST", "application/json", `{"text":42}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			i := intercept.New(tt.keywords)
			if got := i.Check(tt.method, tt.contentType, []byte(tt.body)); got != tt.want {
				t.Fatalf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}
