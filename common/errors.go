// Error taxonomy of the table service. Everything user-visible travels
// through futures or error returns; nothing is thrown across the wire as an
// uncaught fault.
package common

import (
	"github.com/pkg/errors"
)

var (
	// ErrBlockNotOwned means a tablet was asked for a block it does not
	// hold. The routing layer guarantees this never happens for correctly
	// sequenced code, so an occurrence is a protocol bug, not a condition
	// to retry.
	ErrBlockNotOwned = errors.New("block not owned locally")

	// ErrRemoteOpTimeout is returned from Future.Get once the configured
	// timeout elapses. The in-flight request is not cancelled; a late
	// response for the deregistered operation is dropped.
	ErrRemoteOpTimeout = errors.New("remote operation timed out")

	// ErrNoMovableData signals a range-based migration that found nothing
	// to move at the sender.
	ErrNoMovableData = errors.New("no movable data")

	// ErrTransport wraps network failures while sending a request.
	ErrTransport = errors.New("transport failure")

	ErrTableNotFound = errors.New("table does not exist")
)

// WrapBlockNotOwned annotates ErrBlockNotOwned with the offending block.
func WrapBlockNotOwned(blockId BlockId) error {
	return errors.Wrapf(ErrBlockNotOwned, "block %d", blockId)
}
