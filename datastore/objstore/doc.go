/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

// Package objstore provides the blob-store operation adapters: object
// reads with optional gzip decompression and shape conversion (raw
// bytes, text, or a parsed JSON value), and object writes with optional
// compression. Calls run through the shared retry core; in observed
// usage the object store never marks errors retryable, so each call is
// effectively single-attempt.
package objstore
