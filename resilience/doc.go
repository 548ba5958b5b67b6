/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

/*
Package resilience implements the retry-and-pagination core shared by
every operation adapter.

It has three pieces:

  - Do: a generic exponential-backoff retry loop. It is pure
    orchestration; whether an error deserves another attempt is decided
    by the predicate the caller passes in.
  - Retryable: the standard predicate. An error is retryable if and only
    if the backend attached a transient marker to it (an error in the
    chain implementing RetryableError() bool and returning true). No
    status codes, no message sniffing.
  - Accumulate: a fold over result pages. It executes a paged operation
    through Do, appends items in arrival order, follows the continuation
    cursor, and stops at natural end or at a caller-supplied ceiling.

Backends that never mark errors retryable (S3, Secrets Manager in
observed usage) get exactly one attempt per call through the same code
path; only the document-database family exercises retries in practice.
*/
package resilience
