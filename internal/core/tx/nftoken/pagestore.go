package nftoken

import (
	"sort"

	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

// Hook is invoked when the page store creates, deletes, or merges away a
// page; it is the caller's chance to adjust owner-count reserve. Mint
// and Burn pass a real hook; anything that should not move reserve (none
// in this subsystem today) would pass a no-op.
type Hook func() error

func noopHook() error { return nil }

func fireHook(h Hook) error {
	if h == nil {
		return nil
	}
	return h()
}

func tokenLess(a, b sle.NFTokenData) bool {
	return ID(a.NFTokenID).Cmp(ID(b.NFTokenID)) < 0
}

func sortTokens(tokens []sle.NFTokenData) {
	sort.Slice(tokens, func(i, j int) bool { return tokenLess(tokens[i], tokens[j]) })
}

func insertSorted(tokens []sle.NFTokenData, t sle.NFTokenData) []sle.NFTokenData {
	i := sort.Search(len(tokens), func(i int) bool { return !tokenLess(tokens[i], t) })
	tokens = append(tokens, sle.NFTokenData{})
	copy(tokens[i+1:], tokens[i:])
	tokens[i] = t
	return tokens
}

// Insert adds token into owner's directory, creating and splitting pages
// as needed. onPageCreated fires once for every new page the insert
// causes to exist.
func Insert(store PageStore, owner [20]byte, token sle.NFTokenData, onPageCreated Hook) error {
	id := ID(token.NFTokenID)
	key, page, found, err := Locate(store, owner, id)
	if err != nil {
		return err
	}
	if !found {
		page := &sle.NFTokenPageData{NFTokens: []sle.NFTokenData{token}}
		if err := store.WritePage(keylet.PageMax(owner), page); err != nil {
			return err
		}
		return fireHook(onPageCreated)
	}

	if len(page.NFTokens) < sle.MaxTokensPerPage {
		page.NFTokens = insertSorted(page.NFTokens, token)
		return store.WritePage(key, page)
	}

	return split(store, owner, key, page, token, onPageCreated)
}

// split breaks a full page cp into a new, lower-keyed page np holding
// the front portion of its tokens and cp, unchanged in key, holding the
// back portion (which still contains cp's former maximum token, so its
// existing key remains a valid upper bound). The split point is chosen
// to land on an equivalence-class boundary so that no class is torn
// across the two pages.
func split(store PageStore, owner [20]byte, cpKey [32]byte, cp *sle.NFTokenPageData, incoming sle.NFTokenData, onPageCreated Hook) error {
	tokens := cp.NFTokens
	n := len(tokens)
	cmp := ID(tokens[n/2-1].NFTokenID).EquivalenceKey()
	s := -1
	for i := n / 2; i < n; i++ {
		if ID(tokens[i].NFTokenID).EquivalenceKey() != cmp {
			s = i
			break
		}
	}
	if s == -1 {
		for i := 0; i < n; i++ {
			if ID(tokens[i].NFTokenID).EquivalenceKey() == cmp {
				s = i
				break
			}
		}
	}
	if s <= 0 || s >= n {
		return ErrNoSuitablePage
	}

	front := append([]sle.NFTokenData{}, tokens[:s]...)
	back := append([]sle.NFTokenData{}, tokens[s:]...)

	npKey := keylet.PageKeyFor(owner, ID(front[len(front)-1].NFTokenID))
	np := &sle.NFTokenPageData{
		NFTokens:    front,
		NextPageMin: cpKey,
		HasNext:     true,
	}
	if cp.HasPrevious {
		np.PreviousPageMin = cp.PreviousPageMin
		np.HasPrevious = true
		outerPrev, exists, err := store.ReadPage(cp.PreviousPageMin)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBrokenLinkage
		}
		outerPrev.NextPageMin = npKey
		outerPrev.HasNext = true
		if err := store.WritePage(cp.PreviousPageMin, outerPrev); err != nil {
			return err
		}
	}

	cp.NFTokens = back
	cp.PreviousPageMin = npKey
	cp.HasPrevious = true

	first := firstKey(owner, ID(incoming.NFTokenID))
	if keyLessEq(first, npKey) {
		np.NFTokens = insertSorted(np.NFTokens, incoming)
	} else {
		cp.NFTokens = insertSorted(cp.NFTokens, incoming)
	}

	if err := store.WritePage(npKey, np); err != nil {
		return err
	}
	if err := store.WritePage(cpKey, cp); err != nil {
		return err
	}
	return fireHook(onPageCreated)
}

// Remove deletes the token identified by id from owner's directory,
// coalescing pages left under- or un-occupied.
func Remove(store PageStore, owner [20]byte, id ID, onPageDeleted, onPageMerged Hook) error {
	key, page, found, err := Locate(store, owner, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoEntry
	}
	idx := -1
	for i, t := range page.NFTokens {
		if ID(t.NFTokenID) == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNoEntry
	}
	page.NFTokens = append(page.NFTokens[:idx], page.NFTokens[idx+1:]...)

	if len(page.NFTokens) > 0 {
		if err := store.WritePage(key, page); err != nil {
			return err
		}
		return coalesce(store, owner, key, page, onPageMerged)
	}
	return spliceEmpty(store, owner, key, page, onPageDeleted, onPageMerged)
}

func coalesce(store PageStore, owner [20]byte, key [32]byte, page *sle.NFTokenPageData, onPageMerged Hook) error {
	if page.HasPrevious {
		prevKey := page.PreviousPageMin
		prev, exists, err := store.ReadPage(prevKey)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBrokenLinkage
		}
		if len(prev.NFTokens)+len(page.NFTokens) <= sle.MaxTokensPerPage {
			survivor, err := mergeInto(store, prevKey, prev, key, page)
			if err != nil {
				return err
			}
			if err := store.DeletePage(prevKey); err != nil {
				return err
			}
			if err := store.WritePage(key, survivor); err != nil {
				return err
			}
			page = survivor
			if err := fireHook(onPageMerged); err != nil {
				return err
			}
		}
	}
	if page.HasNext {
		nextKey := page.NextPageMin
		next, exists, err := store.ReadPage(nextKey)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBrokenLinkage
		}
		if len(page.NFTokens)+len(next.NFTokens) <= sle.MaxTokensPerPage {
			survivor, err := mergeInto(store, key, page, nextKey, next)
			if err != nil {
				return err
			}
			if err := store.DeletePage(key); err != nil {
				return err
			}
			if err := store.WritePage(nextKey, survivor); err != nil {
				return err
			}
			if err := fireHook(onPageMerged); err != nil {
				return err
			}
		}
	}
	return nil
}

func spliceEmpty(store PageStore, owner [20]byte, key [32]byte, page *sle.NFTokenPageData, onPageDeleted, onPageMerged Hook) error {
	hasPrev, hasNext := page.HasPrevious, page.HasNext
	prevKey, nextKey := page.PreviousPageMin, page.NextPageMin

	if hasPrev {
		prev, exists, err := store.ReadPage(prevKey)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBrokenLinkage
		}
		prev.NextPageMin, prev.HasNext = nextKey, hasNext
		if err := store.WritePage(prevKey, prev); err != nil {
			return err
		}
	}
	if hasNext {
		next, exists, err := store.ReadPage(nextKey)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBrokenLinkage
		}
		next.PreviousPageMin, next.HasPrevious = prevKey, hasPrev
		if err := store.WritePage(nextKey, next); err != nil {
			return err
		}
	}
	if err := store.DeletePage(key); err != nil {
		return err
	}
	if err := fireHook(onPageDeleted); err != nil {
		return err
	}

	if hasPrev && hasNext {
		prev, exists, err := store.ReadPage(prevKey)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBrokenLinkage
		}
		next, exists, err := store.ReadPage(nextKey)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBrokenLinkage
		}
		if len(prev.NFTokens)+len(next.NFTokens) <= sle.MaxTokensPerPage {
			survivor, err := mergeInto(store, prevKey, prev, nextKey, next)
			if err != nil {
				return err
			}
			if err := store.DeletePage(prevKey); err != nil {
				return err
			}
			if err := store.WritePage(nextKey, survivor); err != nil {
				return err
			}
			if err := fireHook(onPageMerged); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeInto combines p1 (the lower-keyed page) into p2 (the survivor,
// which keeps its higher key), relinking p1's predecessor to point at
// p2. The caller is responsible for deleting p1's storage slot and
// persisting the returned survivor at p2's key.
func mergeInto(store PageStore, p1Key [32]byte, p1 *sle.NFTokenPageData, p2Key [32]byte, p2 *sle.NFTokenPageData) (*sle.NFTokenPageData, error) {
	if p1Key == p2Key || !keyLessEq(p1Key, p2Key) || !p1.HasNext || p1.NextPageMin != p2Key || !p2.HasPrevious || p2.PreviousPageMin != p1Key {
		return nil, ErrMergeKeyOrder
	}
	if len(p1.NFTokens)+len(p2.NFTokens) > sle.MaxTokensPerPage {
		return nil, ErrMergeTooLarge
	}
	survivor := &sle.NFTokenPageData{
		NFTokens:        append(append([]sle.NFTokenData{}, p1.NFTokens...), p2.NFTokens...),
		NextPageMin:     p2.NextPageMin,
		HasNext:         p2.HasNext,
		PreviousPageMin: p1.PreviousPageMin,
		HasPrevious:     p1.HasPrevious,
	}
	if p1.HasPrevious {
		outerPrev, exists, err := store.ReadPage(p1.PreviousPageMin)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrBrokenLinkage
		}
		outerPrev.NextPageMin, outerPrev.HasNext = p2Key, true
		if err := store.WritePage(p1.PreviousPageMin, outerPrev); err != nil {
			return nil, err
		}
	}
	return survivor, nil
}
