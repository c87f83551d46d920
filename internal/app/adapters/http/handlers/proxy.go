package handlers

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tgproxy/internal/app/adapters/http/middlewares"
	"tgproxy/internal/app/adapters/metrics"
)

// ProxyHandler forwards one Bot API call 1:1 to the upstream origin.
// The request body is only buffered when it may need inspection; everything
// else streams straight through. A monitored send additionally buffers the
// upstream response so the scheduler can parse a clone of it after the
// caller has been answered.
func (h *Handlers) ProxyHandler(c *gin.Context) {
	target := *h.upstream
	target.Path = c.Request.URL.Path
	target.RawQuery = c.Request.URL.RawQuery

	// multipart uploads can never match a keyword; they stream through
	inspect := len(h.cfg.AutoDelete.Keywords) > 0 && c.Request.Method == http.MethodPost &&
		strings.Contains(c.Request.Header.Get("Content-Type"), "application/json")

	var (
		bodyReader io.Reader = c.Request.Body
		bodyCopy   []byte
	)
	if inspect {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			h.log.Warn("Failed to read request body", slog.Any("error", err.Error()))
			c.String(http.StatusBadRequest, "Bad request")
			return
		}
		bodyCopy = b
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target.String(), bodyReader)
	if err != nil {
		h.log.Error("Failed to build upstream request", err)
		c.String(http.StatusBadGateway, "Bad gateway")
		return
	}

	copyRequestHeaders(req.Header, c.Request.Header)
	if bodyCopy != nil {
		req.ContentLength = int64(len(bodyCopy))
	} else {
		req.ContentLength = c.Request.ContentLength
	}

	started := time.Now()
	resp, err := h.client.Do(req)
	metrics.UpstreamLatency.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ProxiedRequests.WithLabelValues("upstream_error").Inc()
		h.log.Error("Upstream request failed", err, slog.String("path", c.Request.URL.Path))
		c.String(http.StatusBadGateway, "Upstream request failed")
		return
	}
	defer resp.Body.Close()

	metrics.ProxiedRequests.WithLabelValues("forwarded").Inc()

	monitor := false
	if bodyCopy != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		monitor = h.interceptor.Check(c.Request.Method, c.Request.Header.Get("Content-Type"), bodyCopy)
	}

	header := c.Writer.Header()
	copyResponseHeaders(header, resp.Header)
	middlewares.SetCORS(header)

	if !monitor {
		c.Status(resp.StatusCode)
		if _, err := io.Copy(c.Writer, resp.Body); err != nil {
			h.log.Debug("Response stream aborted", slog.Any("error", err.Error()))
		}
		return
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.Error("Failed to read upstream response", err, slog.String("path", c.Request.URL.Path))
		c.Status(resp.StatusCode)
		_, _ = c.Writer.Write(respBody)
		return
	}

	c.Status(resp.StatusCode)
	_, _ = c.Writer.Write(respBody)

	// fire-and-forget: the caller's response is already on the wire
	reqPath := c.Request.URL.Path
	schedBody := decodeBody(resp.Header.Get("Content-Encoding"), respBody)
	if err := h.pool.Submit(func() { h.scheduler.ScheduleFromResponse(reqPath, schedBody) }); err != nil {
		h.log.Warn("Dropping schedule job, worker queue full", slog.String("path", reqPath))
	}
}

// decodeBody undoes upstream compression on the scheduler's copy of the
// response. The caller still receives the original bytes; the transport only
// decompresses transparently when the caller sent no Accept-Encoding of its
// own, so a compression-negotiating caller hands us gzip here.
func decodeBody(encoding string, body []byte) []byte {
	if !strings.Contains(encoding, "gzip") {
		return body
	}

	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return body
	}
	defer zr.Close()

	decoded, err := io.ReadAll(zr)
	if err != nil {
		return body
	}
	return decoded
}

var proxyKeyHeader = http.CanonicalHeaderKey(middlewares.HeaderProxyKey)

// copyRequestHeaders forwards everything except the proxy's own auth
// header; Host is handled by the transport from the target URL.
func copyRequestHeaders(dst, src http.Header) {
	for k, vv := range src {
		if http.CanonicalHeaderKey(k) == proxyKeyHeader {
			continue
		}
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}

// copyResponseHeaders returns upstream headers verbatim except for the CORS
// set the proxy owns and hop-by-hop fields that do not survive re-serving.
func copyResponseHeaders(dst, src http.Header) {
	for k, vv := range src {
		ck := http.CanonicalHeaderKey(k)
		if strings.HasPrefix(ck, "Access-Control-") || ck == "Connection" || ck == "Transfer-Encoding" {
			continue
		}
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}
