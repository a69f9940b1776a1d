package abi

import (
	"encoding/json"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// ToGethABI converts the typed ABI into go-ethereum's binding representation, for
// callers that need argument packing or log parsing on top of the typed model. The
// conversion goes through the JSON form, which both sides define losslessly.
func ToGethABI(a Abi) (*gethabi.ABI, error) {
	encoded, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	parsed, err := gethabi.JSON(strings.NewReader(string(encoded)))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
