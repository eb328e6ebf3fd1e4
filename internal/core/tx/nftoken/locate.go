package nftoken

import (
	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

// PageStore is the storage surface the page-chain algorithms need: plain
// keyed access to pages, addressed by their raw, orderable key rather
// than a hashed Keylet. An owner's chain is always reachable starting
// from keylet.PageMax(owner), which is a fixed, known key rather than
// something that must be looked up through an index — the chain itself,
// walked via PreviousPageMin, is the only ordering structure needed.
type PageStore interface {
	ReadPage(key [32]byte) (*sle.NFTokenPageData, bool, error)
	WritePage(key [32]byte, page *sle.NFTokenPageData) error
	DeletePage(key [32]byte) error
}

func keyLessEq(a, b [32]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return true
}

// Locate returns the page that owns id within owner's directory: the
// page with the smallest key greater than or equal to ⟨owner,
// id-low-bits⟩, bounded by owner's max page. Reached by walking backward
// from the fixed max-page key along PreviousPageMin links, descending
// past a page whenever the target key is still within or below that
// page's lower boundary.
func Locate(store PageStore, owner [20]byte, id ID) (pageKey [32]byte, page *sle.NFTokenPageData, found bool, err error) {
	maxKey := keylet.PageMax(owner)
	curKey := maxKey
	cur, exists, err := store.ReadPage(curKey)
	if err != nil {
		return [32]byte{}, nil, false, err
	}
	if !exists {
		return [32]byte{}, nil, false, nil
	}
	first := firstKey(owner, id)
	for cur.HasPrevious && keyLessEq(first, cur.PreviousPageMin) {
		prevKey := cur.PreviousPageMin
		prev, exists, err := store.ReadPage(prevKey)
		if err != nil {
			return [32]byte{}, nil, false, err
		}
		if !exists {
			return [32]byte{}, nil, false, ErrBrokenLinkage
		}
		curKey, cur = prevKey, prev
	}
	return curKey, cur, true, nil
}

// firstKey is ⟨owner, id's low 96 bits⟩, the search key locate walks
// toward from the max page.
func firstKey(owner [20]byte, id ID) [32]byte {
	return keylet.PageKeyFor(owner, [32]byte(id))
}
