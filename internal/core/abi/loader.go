package abi

// LoadABI is C3's public entry point: parse an ABI JSON document (C7) and
// resolve it into a Contract (C4). This is the only path callers need for
// turning a raw ABI document into something JSONToBin/BinToJSON can drive.
func LoadABI(jsonText []byte) (*Contract, error) {
	raw, err := LoadRawAbi(jsonText)
	if err != nil {
		return nil, err
	}
	return NewContract(raw)
}

// DumpABI renders contract's underlying RawAbi back to its native JSON
// form, the symmetric inverse of LoadABI (ignoring any resolution the
// contract performed beyond what Raw already carries).
func DumpABI(contract *Contract) string {
	return DumpRawAbi(contract.Raw)
}
