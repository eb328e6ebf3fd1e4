package nftoken

import "github.com/solmsted/rippled/internal/core/tx/sle"

// FindToken reports whether id is present in owner's directory, and the
// token record itself (its URI) if so.
func FindToken(store PageStore, owner [20]byte, id ID) (sle.NFTokenData, bool, error) {
	_, page, found, err := Locate(store, owner, id)
	if err != nil || !found {
		return sle.NFTokenData{}, false, err
	}
	for _, t := range page.NFTokens {
		if ID(t.NFTokenID) == id {
			return t, true, nil
		}
	}
	return sle.NFTokenData{}, false, nil
}
