package intercept

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Interceptor decides whether a forwarded send must have its resulting
// message scheduled for deletion. It only ever sees a copy of the request
// body; the bytes going upstream are never touched.
type Interceptor struct {
	keywords []string
}

func New(keywords []string) *Interceptor {
	return &Interceptor{keywords: keywords}
}

// Check is fail-open: anything that cannot be positively matched (wrong
// method, non-JSON payload, malformed body) means "forward normally".
func (i *Interceptor) Check(method, contentType string, body []byte) bool {
	if len(i.keywords) == 0 || method != http.MethodPost {
		return false
	}

	if !strings.Contains(contentType, "application/json") {
		return false
	}

	// sendMessage carries the payload in "text", media sends in "caption".
	// gjson yields an empty result on malformed JSON, which falls through
	// to "do not monitor".
	text := gjson.GetBytes(body, "text").String()
	if text == "" {
		text = gjson.GetBytes(body, "caption").String()
	}
	if text == "" {
		return false
	}

	for _, kw := range i.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	return false
}
