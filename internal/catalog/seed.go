package catalog

import (
	_ "embed"
	"encoding/json"
)

//go:embed seed.json
var seedJSON []byte

// LoadSeed builds the catalog from the embedded seed feed. The seed is part
// of the binary, so a decode failure is a build defect, not a runtime one.
func LoadSeed() *Catalog {
	var products []Product
	if err := json.Unmarshal(seedJSON, &products); err != nil {
		panic("catalog: bad embedded seed: " + err.Error())
	}
	return New(products)
}
