/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package ddb

import (
	"errors"

	"github.com/cloudward/reliant/datastore/mock"
	rerrors "github.com/cloudward/reliant/errors"
	"github.com/cloudward/reliant/storagemodels"
)

func asOpError(err error, target **rerrors.OpError) bool {
	return errors.As(err, target)
}

func asFallbackError(err error, target **rerrors.FallbackError) bool {
	return errors.As(err, target)
}

func asPermanentError(err error, target **mock.PermanentError) bool {
	return errors.As(err, target)
}

func asTransientError(err error, target **mock.TransientError) bool {
	return errors.As(err, target)
}

func updateSpec(set, add map[string]any) storagemodels.UpdateSpec {
	return storagemodels.UpdateSpec{Set: set, Add: add}
}
