/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

/*
Package errors defines the error taxonomy surfaced by the operation
adapters.

Every failure carries a machine-checkable identity (a sentinel reachable
through errors.Is) plus a structured context blob naming the failing
component, the operation, and a snapshot of the input parameters. The
context is attached from construction and never used for control flow:
OpError and FallbackError unwrap to the underlying backend error, so
caller-side errors.Is / errors.As branching sees the original identity.
*/
package errors
