// Package filter implements the pure filter/search engine for list views.
// All functions are order-preserving and side-effect free: applying the same
// filter state twice to an unchanged collection yields identical results.
package filter

import (
	"strings"

	"milasset/internal/model"
)

// All passes every value for the base and equipment type filters.
const All = "all"

// Filters is the list-view filter state. DateRange is accepted but not
// applied to filtering (display-only).
type Filters struct {
	DateRange     string `json:"dateRange"`
	Base          string `json:"base"`
	EquipmentType string `json:"equipmentType"`
}

// Defaults returns the initial filter state for an identity: the base filter
// is pinned to the home base for a base commander and "all" otherwise.
func Defaults(id model.Identity) Filters {
	f := Filters{
		DateRange:     "last30days",
		Base:          All,
		EquipmentType: All,
	}
	if id.BaseLocked() {
		f.Base = NormalizeBase(id.HomeBase)
	}
	return f
}

// Pin re-derives the base filter for an identity: pinned for a base
// commander, otherwise the requested value (defaulting to "all").
func Pin(f Filters, id model.Identity) Filters {
	if id.BaseLocked() {
		f.Base = NormalizeBase(id.HomeBase)
	} else if f.Base == "" {
		f.Base = All
	}
	if f.EquipmentType == "" {
		f.EquipmentType = All
	}
	return f
}

// NormalizeBase lower-cases a base name, strips the literal "base" substring,
// and trims whitespace, so "Alpha Base" and "alpha" compare equal.
func NormalizeBase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "base", "")
	return strings.TrimSpace(s)
}

// NormalizeEquipmentType lower-cases an equipment type and strips spaces,
// so "Protective Gear" and "protectivegear" compare equal.
func NormalizeEquipmentType(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// matchBase applies the base filter to a single base name with exact
// normalized equality.
func matchBase(filterValue, base string) bool {
	return filterValue == All || NormalizeBase(base) == NormalizeBase(filterValue)
}

// matchType applies the equipment type filter with exact normalized equality.
func matchType(filterValue, equipmentType string) bool {
	return filterValue == All || NormalizeEquipmentType(equipmentType) == NormalizeEquipmentType(filterValue)
}

// matchSearch reports whether any of the fields contains the search term,
// case-insensitively. An empty term passes everything.
func matchSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Purchases returns the purchases visible under the given filter and search
// state. Search covers description and supplier.
func Purchases(items []model.Purchase, f Filters, search string) []model.Purchase {
	var visible []model.Purchase
	for _, p := range items {
		if matchBase(f.Base, p.Base) &&
			matchType(f.EquipmentType, p.EquipmentType) &&
			matchSearch(search, p.Description, p.Supplier) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Transfers returns the transfers visible under the given filter and search
// state. A transfer matches the base filter if either endpoint matches;
// search covers description and both bases.
func Transfers(items []model.Transfer, f Filters, search string) []model.Transfer {
	var visible []model.Transfer
	for _, t := range items {
		base := matchBase(f.Base, t.FromBase) || matchBase(f.Base, t.ToBase)
		if base &&
			matchType(f.EquipmentType, t.EquipmentType) &&
			matchSearch(search, t.Description, t.FromBase, t.ToBase) {
			visible = append(visible, t)
		}
	}
	return visible
}

// Assignments returns the assignments visible under the given filter and
// search state. Search covers description, assignee, and unit.
func Assignments(items []model.Assignment, f Filters, search string) []model.Assignment {
	var visible []model.Assignment
	for _, a := range items {
		if matchBase(f.Base, a.Base) &&
			matchType(f.EquipmentType, a.EquipmentType) &&
			matchSearch(search, a.Description, a.AssignedTo, a.Unit) {
			visible = append(visible, a)
		}
	}
	return visible
}

// Expenditures returns the expenditures visible under the given filter and
// search state. Search covers description, unit, and reason.
func Expenditures(items []model.Expenditure, f Filters, search string) []model.Expenditure {
	var visible []model.Expenditure
	for _, e := range items {
		if matchBase(f.Base, e.Base) &&
			matchType(f.EquipmentType, e.EquipmentType) &&
			matchSearch(search, e.Description, e.Unit, e.Reason) {
			visible = append(visible, e)
		}
	}
	return visible
}
