package gateway

import "errors"

// Every rejection aborts the whole operation and leaves prior state
// untouched; none of these are recovered internally.
var (
	// ErrNotAuthorized rejects an upgrade by anyone but the administrator.
	ErrNotAuthorized = errors.New("gateway: caller is not the administrator")

	// ErrInvalidTarget rejects the zero address as a module target.
	ErrInvalidTarget = errors.New("gateway: module target is the zero address")

	// ErrNotAContract rejects a target address with no deployed code.
	ErrNotAContract = errors.New("gateway: module target holds no executable code")

	// ErrTargetNotExecutable fires during forwarding if the active module
	// slot no longer refers to executable code. Unreachable through the
	// gateway's own operations; guards against outside storage corruption.
	ErrTargetNotExecutable = errors.New("gateway: active module is not executable")

	// ErrInvalidAdministrator rejects construction with the zero address
	// as administrator.
	ErrInvalidAdministrator = errors.New("gateway: administrator is the zero address")
)
