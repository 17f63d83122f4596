package model

// Bases is the fixed list of installations.
var Bases = []string{
	"Alpha Base",
	"Bravo Base",
	"Charlie Base",
	"Delta Base",
	"Echo Base",
}

// EquipmentTypes is the fixed list of equipment categories.
var EquipmentTypes = []string{
	"Weapons",
	"Vehicles",
	"Ammunition",
	"Protective Gear",
	"Communication",
	"Medical Supplies",
	"Other",
}

// DateRanges is the fixed list of date-range filter values. Accepted by the
// filter engine but not applied; kept for forward compatibility.
var DateRanges = []string{"today", "last7days", "last30days", "last90days", "custom"}
