/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

/*
Package ddb provides the document-database operation adapters.

A Store wraps a caller-owned DynamoDB-compatible client (the real
*dynamodb.Client or a caching-proxy front-end such as a DAX client
wrapper) and exposes one method per logical operation: point lookups and
writes, conditional updates, batch and transactional reads/writes,
conditioned queries, and full or filtered scans.

Every method validates its arguments synchronously, builds the SDK
request shape, and delegates execution to the resilience core: each
attempt is classified and retried with exponential backoff, and paged
operations accumulate their pages into one ordered result.

Fallback:

A Store constructed with WithCacheProxy declares that its primary client
is a caching-proxy front-end. When such a primary exhausts its retry
budget, the entire operation re-runs from the caller's start cursor
against the direct-database fallback client (WithFallback or
WithFallbackConfig) with a fresh budget. If the fallback also fails, the
surfaced error is the fallback's, with the primary's original failure
attached as context. Without the cache-proxy tag, exhausted retries
propagate immediately.
*/
package ddb
