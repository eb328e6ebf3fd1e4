package tx

// Result is a transaction result code, grouped into the same families
// rippled uses: tes (success), tec (claimed cost, object state may have
// changed), tef (failure, this exact transaction can never succeed),
// tem (malformed, never valid), tel (local-only), ter (retry later).
type Result int

const (
	TesSUCCESS Result = 0

	TecCLAIM                         Result = 100
	TecDIR_FULL                      Result = 121
	TecINSUF_RESERVE_LINE            Result = 122
	TecNO_ENTRY                      Result = 140
	TecINSUFFICIENT_RESERVE          Result = 141
	TecINTERNAL                      Result = 144
	TecEXPIRED                       Result = 148
	TecDUPLICATE                     Result = 149
	TecMAX_SEQUENCE_REACHED          Result = 154
	TecNO_SUITABLE_NFTOKEN_PAGE      Result = 155
	TecNFTOKEN_BUY_SELL_MISMATCH     Result = 156
	TecNFTOKEN_OFFER_TYPE_MISMATCH   Result = 157
	TecCANT_ACCEPT_OWN_NFTOKEN_OFFER Result = 158
	TecINSUFFICIENT_FUNDS            Result = 159
	TecOBJECT_NOT_FOUND              Result = 160
	TecINSUFFICIENT_PAYMENT          Result = 161
	TecNO_PERMISSION                 Result = 139
	TecTOO_BIG                       Result = 162

	TefFAILURE                    Result = -199
	TefALREADY                    Result = -198
	TefNFTOKEN_IS_NOT_TRANSFERABLE Result = -179
	TefBAD_LEDGER                 Result = -195
	TefINTERNAL                   Result = -192

	TemMALFORMED                Result = -299
	TemBAD_AMOUNT                Result = -298
	TemBAD_EXPIRATION             Result = -296
	TemDST_IS_SRC                 Result = -279
	TemINVALID_FLAG               Result = -276
	TemREDUNDANT                  Result = -275
	TemBAD_NFTOKEN_TRANSFER_FEE   Result = -262

	TerRETRY   Result = -99
	TerNO_AUTH Result = -95
)

func (r Result) String() string {
	switch r {
	case TesSUCCESS:
		return "tesSUCCESS"
	case TecCLAIM:
		return "tecCLAIM"
	case TecDIR_FULL:
		return "tecDIR_FULL"
	case TecINSUF_RESERVE_LINE:
		return "tecINSUF_RESERVE_LINE"
	case TecNO_ENTRY:
		return "tecNO_ENTRY"
	case TecINSUFFICIENT_RESERVE:
		return "tecINSUFFICIENT_RESERVE"
	case TecINTERNAL:
		return "tecINTERNAL"
	case TecEXPIRED:
		return "tecEXPIRED"
	case TecDUPLICATE:
		return "tecDUPLICATE"
	case TecMAX_SEQUENCE_REACHED:
		return "tecMAX_SEQUENCE_REACHED"
	case TecNO_SUITABLE_NFTOKEN_PAGE:
		return "tecNO_SUITABLE_NFTOKEN_PAGE"
	case TecNFTOKEN_BUY_SELL_MISMATCH:
		return "tecNFTOKEN_BUY_SELL_MISMATCH"
	case TecNFTOKEN_OFFER_TYPE_MISMATCH:
		return "tecNFTOKEN_OFFER_TYPE_MISMATCH"
	case TecCANT_ACCEPT_OWN_NFTOKEN_OFFER:
		return "tecCANT_ACCEPT_OWN_NFTOKEN_OFFER"
	case TecINSUFFICIENT_FUNDS:
		return "tecINSUFFICIENT_FUNDS"
	case TecOBJECT_NOT_FOUND:
		return "tecOBJECT_NOT_FOUND"
	case TecINSUFFICIENT_PAYMENT:
		return "tecINSUFFICIENT_PAYMENT"
	case TecNO_PERMISSION:
		return "tecNO_PERMISSION"
	case TecTOO_BIG:
		return "tecTOO_BIG"
	case TefFAILURE:
		return "tefFAILURE"
	case TefALREADY:
		return "tefALREADY"
	case TefNFTOKEN_IS_NOT_TRANSFERABLE:
		return "tefNFTOKEN_IS_NOT_TRANSFERABLE"
	case TefBAD_LEDGER:
		return "tefBAD_LEDGER"
	case TefINTERNAL:
		return "tefINTERNAL"
	case TemMALFORMED:
		return "temMALFORMED"
	case TemBAD_AMOUNT:
		return "temBAD_AMOUNT"
	case TemBAD_EXPIRATION:
		return "temBAD_EXPIRATION"
	case TemDST_IS_SRC:
		return "temDST_IS_SRC"
	case TemINVALID_FLAG:
		return "temINVALID_FLAG"
	case TemREDUNDANT:
		return "temREDUNDANT"
	case TemBAD_NFTOKEN_TRANSFER_FEE:
		return "temBAD_NFTOKEN_TRANSFER_FEE"
	case TerRETRY:
		return "terRETRY"
	case TerNO_AUTH:
		return "terNO_AUTH"
	default:
		return "unknown"
	}
}

func (r Result) IsSuccess() bool { return r == TesSUCCESS }
func (r Result) IsTec() bool     { return r >= 100 && r < 200 }
func (r Result) IsTef() bool     { return r <= -100 && r > -200 }
func (r Result) IsTem() bool     { return r <= -200 && r > -300 }
func (r Result) IsTer() bool     { return r <= -1 && r > -100 }

// Applied reports whether a result leaves ledger-state mutations in
// place: tes and tec both claim the transaction fee and keep whatever
// side effects already happened, unlike tem/tef/tel/ter which roll back.
func (r Result) Applied() bool {
	return r.IsSuccess() || r.IsTec()
}
