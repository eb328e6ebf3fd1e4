package nftoken

import (
	"bytes"

	"github.com/ugorji/go/codec"

	"github.com/solmsted/rippled/internal/core/tx/sle"
)

var codecHandle = new(codec.CborHandle)

// ViewPageStore adapts a sle.LedgerView's byte-oriented page accessors
// to the PageStore interface the page-chain algorithms use, encoding
// pages with the ledger's struct codec rather than rippled's own
// STObject wire format, which this subsystem does not need to match.
type ViewPageStore struct {
	View sle.LedgerView
}

func (s ViewPageStore) ReadPage(key [32]byte) (*sle.NFTokenPageData, bool, error) {
	data, err := s.View.ReadPage(key)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	var page sle.NFTokenPageData
	if err := codec.NewDecoderBytes(data, codecHandle).Decode(&page); err != nil {
		return nil, false, err
	}
	return &page, true, nil
}

func (s ViewPageStore) WritePage(key [32]byte, page *sle.NFTokenPageData) error {
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, codecHandle).Encode(page); err != nil {
		return err
	}
	exists, err := s.View.ExistsPage(key)
	if err != nil {
		return err
	}
	if exists {
		return s.View.UpdatePage(key, buf.Bytes())
	}
	return s.View.InsertPage(key, buf.Bytes())
}

func (s ViewPageStore) DeletePage(key [32]byte) error {
	return s.View.ErasePage(key)
}
