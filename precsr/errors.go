package precsr

import "errors"

// ErrTooManyRelationTypes indicates a 33rd distinct relation-type name
// would be registered, exceeding csr.RelTypeCap.
var ErrTooManyRelationTypes = errors.New("precsr: too many relation types")
