package ports

type InterceptPort interface {
	Check(method, contentType string, body []byte) bool
}
