package core

import (
	"encoding/json"
	"strconv"
)

// Denomination is one of the nine fixed bill and coin values used for the
// physical cash count.
type Denomination int

// Denominations in descending order, the order the count sheet lists them.
var Denominations = []Denomination{1000, 500, 200, 100, 50, 20, 10, 5, 1}

// CashCount maps a denomination to how many pieces were counted.
type CashCount map[Denomination]int

// Total is the cash value of the count: sum of denomination times count.
func (c CashCount) Total() int {
	total := 0
	for _, d := range Denominations {
		total += int(d) * c[d]
	}
	return total
}

// Normalized returns a copy with every denomination present and negative
// or unknown entries dropped to zero.
func (c CashCount) Normalized() CashCount {
	out := make(CashCount, len(Denominations))
	for _, d := range Denominations {
		n := c[d]
		if n < 0 {
			n = 0
		}
		out[d] = n
	}
	return out
}

// UnmarshalJSON tolerates counts stored as strings (the count sheet keeps
// raw input, so blank strings are common) and skips keys that are not one
// of the nine denominations.
func (c *CashCount) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(CashCount, len(Denominations))
	for key, val := range raw {
		d, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if n := int(asNumber(val)); n > 0 {
			out[Denomination(d)] = n
		}
	}
	*c = out
	return nil
}
