/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

// Package secrets provides the secret-store operation adapter: secret
// retrieval by name, with the string payload preferred and the binary
// payload used when no string is present. Calls run through the shared
// retry core; the secret store does not mark errors retryable in
// observed usage, so each call is effectively single-attempt.
package secrets
