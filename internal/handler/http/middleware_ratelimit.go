// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/internal/limiter"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
)

// withRateLimit rejects requests of clients that exceeded the limit of l with
// 429. Every counted response carries the RateLimit and RateLimit-Policy
// headers (IETF draft 7); rejected ones also carry Retry-After.
func (h *Handler) withRateLimit(l *limiter.FixedWindow) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if l.Skipped(key) {
				next.ServeHTTP(w, r)
				return
			}

			res := l.Allow(key)
			reset := seconds(res.Reset)

			w.Header().Set("RateLimit-Policy", fmt.Sprintf("%d;w=%d", l.Limit(), seconds(l.Window())))
			w.Header().Set("RateLimit", fmt.Sprintf("limit=%d, remaining=%d, reset=%d", res.Limit, res.Remaining, reset))

			if !res.Allowed {
				logger.FromRequest(r).Warn().Str("limiter", l.Name()).Str("client", key).Int("hits", res.Hits).Msg("rate limit exceeded")
				if h.metrics != nil {
					h.metrics.ObserveRateLimited(l.Name())
				}
				w.Header().Set("Retry-After", strconv.FormatInt(reset, 10))
				h.writeError(w, r, apperr.NewRateLimited(msgRateLimited))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// withSlowDown delays requests of clients that exceeded the free hits of s.
// A request whose context ends while waiting is abandoned.
func (h *Handler) withSlowDown(s *limiter.SlowDown) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			delay := s.Delay(clientIP(r))
			if delay > 0 {
				logger.FromRequest(r).Debug().Dur("delay", delay).Msg("request slowed down")

				timer := time.NewTimer(delay)
				select {
				case <-timer.C:
				case <-r.Context().Done():
					timer.Stop()
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the client address of r. RemoteAddr is the socket peer
// unless withRealIP rewrote it for a trusted proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func seconds(d time.Duration) int64 {
	return int64(math.Ceil(d.Seconds()))
}
