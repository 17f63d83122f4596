package api

import (
	"net/http"
	"sort"

	"milasset/internal/filter"
	"milasset/internal/model"
	"milasset/internal/store"
)

// Metrics is the dashboard headline row. Transfer in and out are relative
// to the base filter; with no base selected every transfer counts as both.
type Metrics struct {
	Purchases   int `json:"purchases"`
	TransferIn  int `json:"transferIn"`
	TransferOut int `json:"transferOut"`
	NetMovement int `json:"netMovement"`
	Assigned    int `json:"assigned"`
	Expended    int `json:"expended"`
}

// BaseStatistics summarizes recorded activity for one base.
type BaseStatistics struct {
	Name        string `json:"name"`
	Purchases   int    `json:"purchases"`
	Incoming    int    `json:"incoming"`
	Outgoing    int    `json:"outgoing"`
	Assignments int    `json:"assignments"`
	Expended    int    `json:"expended"`
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Base        string `json:"base"`
	Date        string `json:"date"`
	Status      string `json:"status,omitempty"`
}

const recentActivityLimit = 10

// Dashboard handles GET /api/dashboard.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionDashboard) {
		return
	}
	ident := GetIdentity(r.Context())
	ctx := r.Context()

	purchases, err := store.ListPurchases(ctx, s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	transfers, err := store.ListTransfers(ctx, s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	assignments, err := store.ListAssignments(ctx, s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	expenditures, err := store.ListExpenditures(ctx, s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	filters := queryFilters(r, ident)

	metrics := computeMetrics(filters,
		filter.Purchases(purchases, filters, ""),
		filter.Transfers(transfers, filters, ""),
		filter.Assignments(assignments, filters, ""),
		filter.Expenditures(expenditures, filters, ""),
	)

	jsonResponse(w, http.StatusOK, map[string]any{
		"metrics":        metrics,
		"baseStatistics": baseStatistics(purchases, transfers, assignments, expenditures),
		"recentActivity": recentActivity(purchases, transfers, assignments, expenditures),
		"filters":        filters,
	})
}

func computeMetrics(f filter.Filters, purchases []model.Purchase, transfers []model.Transfer, assignments []model.Assignment, expenditures []model.Expenditure) Metrics {
	var m Metrics

	for _, p := range purchases {
		m.Purchases += p.Quantity
	}

	for _, t := range transfers {
		if baseMatches(f.Base, t.ToBase) {
			m.TransferIn += t.Quantity
		}
		if baseMatches(f.Base, t.FromBase) {
			m.TransferOut += t.Quantity
		}
	}

	for _, a := range assignments {
		if a.Status == model.AssignmentStatusActive {
			m.Assigned++
		}
	}

	for _, e := range expenditures {
		m.Expended += e.Quantity
	}

	m.NetMovement = m.Purchases + m.TransferIn - m.TransferOut
	return m
}

func baseMatches(filterValue, base string) bool {
	return filterValue == filter.All ||
		filter.NormalizeBase(base) == filter.NormalizeBase(filterValue)
}

// baseStatistics aggregates unfiltered activity per base, in the fixed base
// order.
func baseStatistics(purchases []model.Purchase, transfers []model.Transfer, assignments []model.Assignment, expenditures []model.Expenditure) []BaseStatistics {
	stats := make([]BaseStatistics, 0, len(model.Bases))
	for _, base := range model.Bases {
		st := BaseStatistics{Name: base}

		for _, p := range purchases {
			if p.Base == base {
				st.Purchases += p.Quantity
			}
		}
		for _, t := range transfers {
			if t.ToBase == base {
				st.Incoming += t.Quantity
			}
			if t.FromBase == base {
				st.Outgoing += t.Quantity
			}
		}
		for _, a := range assignments {
			if a.Base == base && a.Status == model.AssignmentStatusActive {
				st.Assignments++
			}
		}
		for _, e := range expenditures {
			if e.Base == base {
				st.Expended += e.Quantity
			}
		}

		stats = append(stats, st)
	}
	return stats
}

// recentActivity merges the newest records of all four stores into a single
// feed, newest first.
func recentActivity(purchases []model.Purchase, transfers []model.Transfer, assignments []model.Assignment, expenditures []model.Expenditure) []Activity {
	var feed []Activity

	for _, p := range purchases {
		feed = append(feed, Activity{
			Type:        "Purchase",
			Description: p.Description,
			Base:        p.Base,
			Date:        p.PurchaseDate,
			Status:      p.Status,
		})
	}
	for _, t := range transfers {
		feed = append(feed, Activity{
			Type:        "Transfer",
			Description: t.Description,
			Base:        t.ToBase,
			Date:        t.TransferDate,
			Status:      t.Status,
		})
	}
	for _, a := range assignments {
		feed = append(feed, Activity{
			Type:        "Assignment",
			Description: a.Description,
			Base:        a.Base,
			Date:        a.AssignmentDate,
			Status:      a.Status,
		})
	}
	for _, e := range expenditures {
		feed = append(feed, Activity{
			Type:        "Expenditure",
			Description: e.Description,
			Base:        e.Base,
			Date:        e.ExpenditureDate,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date > feed[j].Date
	})

	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}
	return feed
}
