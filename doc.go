/*
Package reliant provides a resilience layer over three AWS data services:
DynamoDB (optionally fronted by a caching-proxy client such as DAX),
S3, and Secrets Manager.

Every operation is normalized into the same shape: validate arguments,
build the backend request, execute it with exponential-backoff retries
for errors the backend marks transient, accumulate paged result sets
into one ordered sequence, and, for the document-database family,
re-run the whole operation against a direct-database fallback client
when a caching-proxy primary keeps failing.

The heavy lifting lives in the resilience package (retrier, retryability
classifier, page accumulator). The datastore subpackages are thin
adapters that translate per-operation arguments into SDK request shapes
and delegate execution:

	store := ddb.New(client,
	    ddb.WithCacheProxy(),
	    ddb.WithFallbackConfig(awsCfg),
	    ddb.WithLogger(zaplog.Logger{L: zl}),
	)

	res, err := store.Query(ctx, "orders",
	    []storagemodels.Condition{
	        {Key: "UserID", Operator: "=", Value: "u-17"},
	        {Key: "CreatedAt", Operator: "BETWEEN", Value: []any{from, to}},
	    },
	    ddb.QueryOptions{Page: storagemodels.PageOptions{Limit: 100}},
	)

Clients are caller-owned and reused for the process lifetime; this
package never constructs the primary client, only the internal
direct-database fallback for the document family.
*/
package reliant
