package middlewares

// HeaderProxyKey carries the shared secret and must never leak upstream.
const HeaderProxyKey = "X-TG-Proxy-Key"

type Middlewares struct{}

func New() *Middlewares {
	return &Middlewares{}
}
