// Package pipeline wraps an http.RoundTripper so every outbound request
// carries the current access credential and an expired credential is
// recovered from transparently: refresh once, replay once, and on refresh
// failure tear the session down.
package pipeline

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/shopwire/storefront-client/internal/session"
)

// RefreshFunc exchanges a refresh credential for a new access credential.
type RefreshFunc func(ctx context.Context, refresh string) (access string, err error)

// Transport decorates Base with the authorization behavior. Per original
// request there is at most one refresh attempt and at most one replay;
// persistent 401s can never loop.
//
// Concurrent requests that fail at the same time share a single in-flight
// refresh: the loser of the race finds the credential already replaced and
// replays without issuing its own refresh call.
type Transport struct {
	Base    http.RoundTripper
	Session *session.Store
	Refresh RefreshFunc

	refreshMu sync.Mutex
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	access := t.Session.AccessToken()

	first, err := t.send(req, access, true)
	if err != nil {
		// Transport-level failures are not the authorization path;
		// pass them through untouched.
		return nil, err
	}
	if first.StatusCode != http.StatusUnauthorized {
		return first, nil
	}

	if t.Session.RefreshToken() == "" {
		// Nothing to recover with.
		t.Session.Logout()
		return first, nil
	}

	if req.Body != nil && req.GetBody == nil {
		// The body was consumed by the first attempt and cannot be
		// rebuilt, so a replay would send garbage. Surface the 401.
		return first, nil
	}

	// Buffer the original failure so it can still be surfaced if
	// recovery does not pan out.
	first = bufferBody(first)

	newAccess, ok := t.refreshOnce(req.Context(), access)
	if !ok {
		t.Session.Logout()
		log.Warn().Str("url", req.URL.Path).Msg("credential refresh failed, session destroyed")
		return first, nil
	}

	replay, err := t.send(req, newAccess, false)
	if err != nil {
		return nil, err
	}
	refreshReplaysTotal.Inc()
	return replay, nil
}

// send dispatches a clone of req with the given credential attached. The
// first attempt may consume req.Body; replays rebuild it via GetBody, which
// the http package populates for all in-memory bodies.
func (t *Transport) send(req *http.Request, access string, firstAttempt bool) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	if !firstAttempt && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		cloned.Body = body
	}
	if access != "" {
		cloned.Header.Set("Authorization", "Bearer "+access)
	} else {
		// Never send a placeholder credential.
		cloned.Header.Del("Authorization")
	}
	return t.base().RoundTrip(cloned)
}

// refreshOnce performs the single refresh call, deduplicating against
// concurrent requests. usedAccess is the credential the failed request was
// sent with; if it already changed under the lock, someone else refreshed
// and the new credential is reused directly.
func (t *Transport) refreshOnce(ctx context.Context, usedAccess string) (string, bool) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	if cur := t.Session.AccessToken(); cur != usedAccess && cur != "" {
		refreshCoalescedTotal.Inc()
		return cur, true
	}

	refresh := t.Session.RefreshToken()
	if refresh == "" {
		return "", false
	}

	access, err := t.Refresh(ctx, refresh)
	if err != nil || access == "" {
		refreshFailuresTotal.Inc()
		return "", false
	}
	if err := t.Session.RefreshAccess(access); err != nil {
		refreshFailuresTotal.Inc()
		return "", false
	}
	refreshSuccessTotal.Inc()
	return access, true
}

// bufferBody reads resp.Body into memory and replaces it so the response
// stays readable after the network resources are released.
func bufferBody(resp *http.Response) *http.Response {
	if resp.Body == nil {
		return resp
	}
	data, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp
}
