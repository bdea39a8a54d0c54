package storage

import "errors"

// ErrAlreadyInTx is returned when a transaction is started from a handle that
// is already transactional.
var ErrAlreadyInTx = errors.New("already in tx")

// ErrConflict is returned by WithTx when a staged write lost to a concurrent
// write of the same email at commit time. Nothing staged is applied.
var ErrConflict = errors.New("conflicting write at commit")
