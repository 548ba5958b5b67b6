/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

// Package storagemodels defines the caller-facing parameter and result
// shapes shared by the datastore adapters: condition triples for
// conjunctive query expressions, update specifications, pagination
// controls, and accumulated page results.
package storagemodels
