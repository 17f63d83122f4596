package store

import "milasset/internal/model"

func strptr(s string) *string { return &s }

// seedPurchases returns the fixed sample purchases persisted on first access.
func seedPurchases() []model.Purchase {
	return []model.Purchase{
		{
			ID:            1,
			EquipmentType: "Weapons",
			Description:   "M4A1 Carbine Rifles",
			Quantity:      25,
			UnitPrice:     1200,
			TotalCost:     30000,
			Supplier:      "Defense Contractors Inc.",
			Base:          "Alpha Base",
			PurchaseDate:  "2024-06-15",
			Status:        model.PurchaseStatusCompleted,
			PurchasedBy:   "Lt. Colonel Johnson",
			Notes:         "Standard issue rifles for infantry units",
		},
		{
			ID:            2,
			EquipmentType: "Vehicles",
			Description:   "HMMWV (Humvee)",
			Quantity:      3,
			UnitPrice:     85000,
			TotalCost:     255000,
			Supplier:      "Military Vehicles Corp",
			Base:          "Bravo Base",
			PurchaseDate:  "2024-06-14",
			Status:        model.PurchaseStatusPending,
			PurchasedBy:   "Major Smith",
			Notes:         "Armored patrol vehicles",
		},
		{
			ID:            3,
			EquipmentType: "Protective Gear",
			Description:   "Body Armor Vests",
			Quantity:      50,
			UnitPrice:     800,
			TotalCost:     40000,
			Supplier:      "Tactical Gear Solutions",
			Base:          "Charlie Base",
			PurchaseDate:  "2024-06-13",
			Status:        model.PurchaseStatusCompleted,
			PurchasedBy:   "Captain Davis",
			Notes:         "Level IIIA protection",
		},
		{
			ID:            4,
			EquipmentType: "Communication",
			Description:   "Tactical Radio Systems",
			Quantity:      15,
			UnitPrice:     2500,
			TotalCost:     37500,
			Supplier:      "CommTech Military",
			Base:          "Delta Base",
			PurchaseDate:  "2024-06-12",
			Status:        model.PurchaseStatusCompleted,
			PurchasedBy:   "Major Wilson",
			Notes:         "Encrypted communication devices",
		},
		{
			ID:            5,
			EquipmentType: "Ammunition",
			Description:   "5.56mm NATO Rounds",
			Quantity:      10000,
			UnitPrice:     0.75,
			TotalCost:     7500,
			Supplier:      "Ammo Supply Co.",
			Base:          "Echo Base",
			PurchaseDate:  "2024-06-11",
			Status:        model.PurchaseStatusCompleted,
			PurchasedBy:   "Sergeant Major Brown",
			Notes:         "Training and operational use",
		},
	}
}

// seedTransfers returns the fixed sample transfers persisted on first access.
func seedTransfers() []model.Transfer {
	return []model.Transfer{
		{
			ID:               1,
			EquipmentType:    "Vehicles",
			Description:      "HMMWV Armored Vehicle",
			Quantity:         2,
			FromBase:         "Alpha Base",
			ToBase:           "Bravo Base",
			TransferDate:     "2024-06-16",
			EstimatedArrival: "2024-06-18",
			Status:           model.TransferStatusInTransit,
			RequestedBy:      "Major Smith",
			ApprovedBy:       strptr("Colonel Johnson"),
			Priority:         model.PriorityUrgent,
			Notes:            "Urgent deployment requirement",
		},
		{
			ID:               2,
			EquipmentType:    "Weapons",
			Description:      "M249 Light Machine Guns",
			Quantity:         8,
			FromBase:         "Charlie Base",
			ToBase:           "Delta Base",
			TransferDate:     "2024-06-15",
			EstimatedArrival: "2024-06-16",
			Status:           model.TransferStatusCompleted,
			RequestedBy:      "Captain Davis",
			ApprovedBy:       strptr("Lt. Colonel Wilson"),
			Priority:         model.PriorityNormal,
			Notes:            "Training exercise equipment",
		},
		{
			ID:               3,
			EquipmentType:    "Communication",
			Description:      "Tactical Radio Systems",
			Quantity:         12,
			FromBase:         "Echo Base",
			ToBase:           "Alpha Base",
			TransferDate:     "2024-06-14",
			EstimatedArrival: "2024-06-17",
			Status:           model.TransferStatusPending,
			RequestedBy:      "Lieutenant Brown",
			ApprovedBy:       nil,
			Priority:         model.PriorityNormal,
			Notes:            "Replacement for damaged units",
		},
		{
			ID:               4,
			EquipmentType:    "Protective Gear",
			Description:      "Night Vision Goggles",
			Quantity:         15,
			FromBase:         "Bravo Base",
			ToBase:           "Charlie Base",
			TransferDate:     "2024-06-13",
			EstimatedArrival: "2024-06-14",
			Status:           model.TransferStatusCompleted,
			RequestedBy:      "Sergeant Major Taylor",
			ApprovedBy:       strptr("Major Anderson"),
			Priority:         model.PriorityHigh,
			Notes:            "Night operations support",
		},
		{
			ID:               5,
			EquipmentType:    "Medical Supplies",
			Description:      "Field Medical Kits",
			Quantity:         30,
			FromBase:         "Delta Base",
			ToBase:           "Echo Base",
			TransferDate:     "2024-06-12",
			EstimatedArrival: "2024-06-13",
			Status:           model.TransferStatusCompleted,
			RequestedBy:      "Medic Thompson",
			ApprovedBy:       strptr("Captain Martinez"),
			Priority:         model.PriorityNormal,
			Notes:            "Medical supply replenishment",
		},
	}
}

// seedAssignments returns the fixed sample assignments persisted on first
// access.
func seedAssignments() []model.Assignment {
	return []model.Assignment{
		{
			ID:             1,
			EquipmentType:  "Weapons",
			Description:    "M4A1 Carbine Rifle",
			SerialNumber:   "M4-2024-001",
			AssignedTo:     "Sergeant John Smith",
			Unit:           "1st Infantry Squad",
			Base:           "Alpha Base",
			AssignmentDate: "2024-06-15",
			Status:         model.AssignmentStatusActive,
			AssignedBy:     "Lt. Colonel Johnson",
			Notes:          "Primary weapon assignment",
		},
		{
			ID:             2,
			EquipmentType:  "Protective Gear",
			Description:    "Body Armor Vest",
			SerialNumber:   "BA-2024-045",
			AssignedTo:     "Corporal Jane Doe",
			Unit:           "2nd Recon Team",
			Base:           "Bravo Base",
			AssignmentDate: "2024-06-14",
			Status:         model.AssignmentStatusActive,
			AssignedBy:     "Major Wilson",
			Notes:          "Level IIIA protection",
		},
		{
			ID:             3,
			EquipmentType:  "Communication",
			Description:    "Tactical Radio",
			SerialNumber:   "TR-2024-089",
			AssignedTo:     "Private Mike Johnson",
			Unit:           "3rd Communications",
			Base:           "Charlie Base",
			AssignmentDate: "2024-06-13",
			Status:         model.AssignmentStatusReturned,
			AssignedBy:     "Captain Davis",
			Notes:          "Field communication device",
		},
	}
}

// seedExpenditures returns the fixed sample expenditures persisted on first
// access.
func seedExpenditures() []model.Expenditure {
	return []model.Expenditure{
		{
			ID:              1,
			EquipmentType:   "Ammunition",
			Description:     "5.56mm NATO Rounds",
			Quantity:        1000,
			Unit:            "1st Infantry Squad",
			Base:            "Alpha Base",
			ExpenditureDate: "2024-06-16",
			Reason:          "Training Exercise",
			AuthorizedBy:    "Major Smith",
			Notes:           "Live fire training",
		},
		{
			ID:              2,
			EquipmentType:   "Medical Supplies",
			Description:     "Field Bandages",
			Quantity:        50,
			Unit:            "Medical Corps",
			Base:            "Bravo Base",
			ExpenditureDate: "2024-06-15",
			Reason:          "Medical Training",
			AuthorizedBy:    "Captain Martinez",
			Notes:           "First aid training supplies",
		},
		{
			ID:              3,
			EquipmentType:   "Ammunition",
			Description:     "9mm Pistol Rounds",
			Quantity:        500,
			Unit:            "2nd Security Team",
			Base:            "Delta Base",
			ExpenditureDate: "2024-06-14",
			Reason:          "Qualification Training",
			AuthorizedBy:    "Lt. Colonel Brown",
			Notes:           "Marksmanship qualification",
		},
	}
}
