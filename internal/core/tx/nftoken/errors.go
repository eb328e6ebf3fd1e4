package nftoken

import "errors"

// Apply-time and fatal errors the page store and settlement logic can
// raise. Callers in the tx layer map these onto result codes.
var (
	ErrNoSuitablePage  = errors.New("nftoken: page is a single equivalence class and cannot be split")
	ErrNoEntry         = errors.New("nftoken: token not present in owner's directory")
	ErrBrokenLinkage   = errors.New("nftoken: page chain linkage is inconsistent")
	ErrMergeTooLarge   = errors.New("nftoken: merge would exceed page capacity")
	ErrMergeKeyOrder   = errors.New("nftoken: merge candidates are not adjacent in key order")
)
