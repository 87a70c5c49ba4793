package pipeline

import "errors"

// ErrNoNumericData means a document produced text but no figures to assess.
var ErrNoNumericData = errors.New("document contains no numeric financial data")
