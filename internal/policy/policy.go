// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package policy implements the link and image security gate.
//
// Every link a user can open and every image the renderer may fetch must
// first pass IsAllowed. The gate is a pure predicate over a scheme
// allow-list and an optional host allow-list; it never errors, it only
// refuses. URL targets arrive from model output and are untrusted.
package policy

import (
	"net/url"
	"strings"
)

// =============================================================================
// LINK POLICY
// =============================================================================

// LinkPolicy holds the allow-lists a URL target must satisfy before the
// renderer may activate it.
//
// AllowedHosts distinguishes nil from empty: nil means any host is
// permitted once the scheme check passes, while a non-nil empty list
// permits no host at all. Callers must preserve that distinction when
// building a policy from configuration.
type LinkPolicy struct {
	AllowedSchemes []string
	AllowedHosts   []string
}

// Allows reports whether the policy permits activating rawURL.
func (p LinkPolicy) Allows(rawURL string) bool {
	return IsAllowed(rawURL, p.AllowedSchemes, p.AllowedHosts)
}

// DefaultLinkPolicy permits http and https links to any host.
func DefaultLinkPolicy() LinkPolicy {
	return LinkPolicy{AllowedSchemes: []string{"https", "http"}}
}

// =============================================================================
// IMAGE POLICY
// =============================================================================

// ImagePolicy decides how image references are handled. It is a closed
// set: Disabled never resolves a URL, TapToLoad requires an explicit user
// action before resolution is attempted, and Allow resolves immediately.
//
// The "revealed" state for TapToLoad belongs to the renderer; the policy
// only carries the allow-lists that apply once loading is attempted.
type ImagePolicy interface {
	imagePolicy()
}

// ImagesDisabled suppresses all image loading.
type ImagesDisabled struct{}

// ImagesTapToLoad loads an image only after the user reveals it.
type ImagesTapToLoad struct {
	LinkPolicy
}

// ImagesAllow loads permitted images immediately.
type ImagesAllow struct {
	LinkPolicy
}

func (ImagesDisabled) imagePolicy()  {}
func (ImagesTapToLoad) imagePolicy() {}
func (ImagesAllow) imagePolicy()     {}

// DefaultImagePolicy requires a tap to load and permits https only.
func DefaultImagePolicy() ImagePolicy {
	return ImagesTapToLoad{LinkPolicy{AllowedSchemes: []string{"https"}}}
}

// =============================================================================
// THE GATE
// =============================================================================

// IsAllowed reports whether rawURL may be activated under the given
// scheme allow-list and optional host allow-list. A nil allowedHosts
// means any host; a configured host list rejects URLs with no host
// component. Scheme and host comparisons are case-insensitive.
//
// Unparsable input is a refusal, never an error: malformed targets in
// model output must degrade to a blocked placeholder, not a crash.
func IsAllowed(rawURL string, allowedSchemes, allowedHosts []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	if !containsFold(allowedSchemes, scheme) {
		return false
	}

	if allowedHosts == nil {
		return true
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	return containsFold(allowedHosts, host)
}

// containsFold reports whether list contains s, comparing case-insensitively.
// s must already be lower-cased.
func containsFold(list []string, s string) bool {
	for _, entry := range list {
		if strings.ToLower(entry) == s {
			return true
		}
	}
	return false
}
