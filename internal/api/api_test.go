package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"milasset/internal/auth"
	"milasset/internal/db"
	"milasset/internal/idgen"
	"milasset/internal/model"
)

const testSecret = "test-secret"

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)

	srv := &Server{
		DB:            database,
		SessionSecret: testSecret,
		DefaultRole:   model.RoleAdmin,
		IDs:           idgen.NewSequence(1000),
		Now:           func() time.Time { return time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC) },
	}
	server := httptest.NewServer(NewRouter(srv, NewCapabilityRegistry()))
	t.Cleanup(server.Close)
	return server
}

// roleRequest builds a request carrying a session token for the given role.
func roleRequest(t *testing.T, method, url, role, section string, body any) *http.Request {
	t.Helper()

	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := auth.GenerateToken(testSecret, role, section)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	return req
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestSessionDefaultsToAdminWithoutToken(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/session")
	if err != nil {
		t.Fatalf("session request: %v", err)
	}

	var body struct {
		Identity      model.Identity `json:"identity"`
		ActiveSection string         `json:"activeSection"`
	}
	decodeBody(t, resp, &body)

	if body.Identity.Role != model.RoleAdmin {
		t.Errorf("expected default role 'admin', got %q", body.Identity.Role)
	}
	if body.ActiveSection != model.SectionDashboard {
		t.Errorf("expected dashboard section, got %q", body.ActiveSection)
	}
}

func TestSwitchRoleResetsForbiddenSection(t *testing.T) {
	server := setupTestServer(t)

	// An admin viewing purchases switches to base commander, which may not
	// view purchases; the active section must fall back to the dashboard.
	req := roleRequest(t, http.MethodPut, server.URL+"/api/session/role",
		model.RoleAdmin, model.SectionPurchases,
		map[string]string{"role": model.RoleBaseCommander})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("switch role: %v", err)
	}

	var body struct {
		Identity      model.Identity `json:"identity"`
		ActiveSection string         `json:"activeSection"`
		Message       string         `json:"message"`
	}
	decodeBody(t, resp, &body)

	if body.Identity.Name != "Commander Bravo" {
		t.Errorf("expected Commander Bravo, got %q", body.Identity.Name)
	}
	if body.ActiveSection != model.SectionDashboard {
		t.Errorf("expected section reset to dashboard, got %q", body.ActiveSection)
	}
	if body.Message != "Switched to Commander Bravo (base commander)" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestSwitchRoleKeepsPermittedSection(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPut, server.URL+"/api/session/role",
		model.RoleAdmin, model.SectionAssignments,
		map[string]string{"role": model.RoleBaseCommander})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("switch role: %v", err)
	}

	var body struct {
		ActiveSection string `json:"activeSection"`
	}
	decodeBody(t, resp, &body)

	if body.ActiveSection != model.SectionAssignments {
		t.Errorf("expected assignments to stay active, got %q", body.ActiveSection)
	}
}

func TestSwitchRoleUnknown(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPut, server.URL+"/api/session/role",
		model.RoleAdmin, model.SectionDashboard,
		map[string]string{"role": "general"})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("switch role: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown role, got %d", resp.StatusCode)
	}
}

func TestSectionAccess(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		role string
		path string
		want int
	}{
		{model.RoleAdmin, "/api/purchases", http.StatusOK},
		{model.RoleAdmin, "/api/transfers", http.StatusOK},
		{model.RoleAdmin, "/api/assignments", http.StatusOK},
		{model.RoleBaseCommander, "/api/purchases", http.StatusForbidden},
		{model.RoleBaseCommander, "/api/transfers", http.StatusForbidden},
		{model.RoleBaseCommander, "/api/assignments", http.StatusOK},
		{model.RoleBaseCommander, "/api/expenditures", http.StatusOK},
		{model.RoleLogisticsOfficer, "/api/purchases", http.StatusOK},
		{model.RoleLogisticsOfficer, "/api/transfers", http.StatusOK},
		{model.RoleLogisticsOfficer, "/api/assignments", http.StatusForbidden},
		{model.RoleLogisticsOfficer, "/api/expenditures", http.StatusForbidden},
	}

	for _, tt := range tests {
		req := roleRequest(t, http.MethodGet, server.URL+tt.path, tt.role, model.SectionDashboard, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.role, tt.path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != tt.want {
			t.Errorf("%s %s: expected %d, got %d", tt.role, tt.path, tt.want, resp.StatusCode)
		}
	}
}

func TestSwitchSectionForbidden(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPut, server.URL+"/api/session/section",
		model.RoleBaseCommander, model.SectionDashboard,
		map[string]string{"section": model.SectionPurchases})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("switch section: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
}

func TestCreatePurchaseEndpoint(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPost, server.URL+"/api/purchases",
		model.RoleAdmin, model.SectionPurchases,
		map[string]any{
			"equipmentType": "Weapons",
			"description":   "M17 Pistols",
			"quantity":      10,
			"unitPrice":     600,
			"supplier":      "Sidearm Supply Co.",
			"base":          "Delta Base",
			"purchasedBy":   "Major Wilson",
		})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("create purchase: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body struct {
		Purchase model.Purchase `json:"purchase"`
		Message  string         `json:"message"`
	}
	decodeBody(t, resp, &body)

	if body.Purchase.TotalCost != 6000 {
		t.Errorf("expected total cost 6000, got %v", body.Purchase.TotalCost)
	}
	if body.Purchase.Status != model.PurchaseStatusPending {
		t.Errorf("expected pending status, got %q", body.Purchase.Status)
	}
	if body.Message != "M17 Pistols purchase order has been submitted for approval." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestCreatePurchaseValidation(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPost, server.URL+"/api/purchases",
		model.RoleAdmin, model.SectionPurchases,
		map[string]any{"description": "Incomplete"})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("create purchase: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	decodeBody(t, resp, &body)

	if body.Error != "missing information" {
		t.Errorf("expected 'missing information', got %q", body.Error)
	}
	if len(body.Fields) == 0 {
		t.Error("expected offending fields to be named")
	}
}

func TestCommanderListIsPinnedToHomeBase(t *testing.T) {
	server := setupTestServer(t)

	// The base filter in the query is ignored for a base commander.
	req := roleRequest(t, http.MethodGet,
		server.URL+"/api/assignments?base=alpha",
		model.RoleBaseCommander, model.SectionAssignments, nil)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("list assignments: %v", err)
	}

	var body struct {
		Assignments []model.Assignment `json:"assignments"`
		Filters     struct {
			Base string `json:"base"`
		} `json:"filters"`
	}
	decodeBody(t, resp, &body)

	if body.Filters.Base != "bravo" {
		t.Errorf("expected base filter pinned to 'bravo', got %q", body.Filters.Base)
	}
	for _, a := range body.Assignments {
		if a.Base != "Bravo Base" {
			t.Errorf("expected only Bravo Base assignments, got %q", a.Base)
		}
	}
}

func TestCommanderAssignmentPinnedOnCreate(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPost, server.URL+"/api/assignments",
		model.RoleBaseCommander, model.SectionAssignments,
		map[string]any{
			"equipmentType": "Weapons",
			"description":   "M4A1 Carbine Rifle",
			"serialNumber":  "M4-2024-900",
			"assignedTo":    "Private Lee",
			"unit":          "4th Infantry Squad",
			"base":          "Echo Base",
		})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body struct {
		Assignment model.Assignment `json:"assignment"`
	}
	decodeBody(t, resp, &body)

	if body.Assignment.Base != "Bravo Base" {
		t.Errorf("expected base pinned to Bravo Base, got %q", body.Assignment.Base)
	}
	if body.Assignment.AssignedBy != "Commander Bravo" {
		t.Errorf("expected assigner Commander Bravo, got %q", body.Assignment.AssignedBy)
	}
}

func TestCreateTransferSameBaseEndpoint(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPost, server.URL+"/api/transfers",
		model.RoleLogisticsOfficer, model.SectionTransfers,
		map[string]any{
			"equipmentType":    "Weapons",
			"description":      "Rifles",
			"quantity":         5,
			"fromBase":         "Alpha Base",
			"toBase":           "Alpha Base",
			"estimatedArrival": "2024-07-05",
			"requestedBy":      "Logistics Charlie",
		})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("create transfer: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for same-base transfer, got %d", resp.StatusCode)
	}
}

func TestDashboardMetrics(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodGet, server.URL+"/api/dashboard",
		model.RoleAdmin, model.SectionDashboard, nil)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	var body struct {
		Metrics        Metrics          `json:"metrics"`
		BaseStatistics []BaseStatistics `json:"baseStatistics"`
		RecentActivity []Activity       `json:"recentActivity"`
	}
	decodeBody(t, resp, &body)

	// Seed data: 10093 units purchased, everything transfers in and out
	// under the all-bases view, 2 active assignments, 1550 expended.
	if body.Metrics.Purchases != 10093 {
		t.Errorf("expected 10093 purchased units, got %d", body.Metrics.Purchases)
	}
	if body.Metrics.TransferIn != body.Metrics.TransferOut {
		t.Errorf("expected symmetric transfers under all-bases view, got in=%d out=%d",
			body.Metrics.TransferIn, body.Metrics.TransferOut)
	}
	if body.Metrics.Assigned != 2 {
		t.Errorf("expected 2 active assignments, got %d", body.Metrics.Assigned)
	}
	if body.Metrics.Expended != 1550 {
		t.Errorf("expected 1550 expended units, got %d", body.Metrics.Expended)
	}

	if len(body.BaseStatistics) != len(model.Bases) {
		t.Errorf("expected statistics for %d bases, got %d", len(model.Bases), len(body.BaseStatistics))
	}
	if len(body.RecentActivity) == 0 || len(body.RecentActivity) > 10 {
		t.Errorf("expected 1-10 activity entries, got %d", len(body.RecentActivity))
	}
	for i := 1; i < len(body.RecentActivity); i++ {
		if body.RecentActivity[i-1].Date < body.RecentActivity[i].Date {
			t.Error("expected recent activity sorted newest first")
			break
		}
	}
}

func TestCapabilityNotSupported(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPost, server.URL+"/api/capabilities/export",
		model.RoleAdmin, model.SectionDashboard, nil)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("capability: %v", err)
	}
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)

	if body["error"] != "not supported" {
		t.Errorf("expected 'not supported', got %q", body["error"])
	}
	if body["capability"] != "export" {
		t.Errorf("expected capability 'export', got %q", body["capability"])
	}
}

func TestCapabilityUnknown(t *testing.T) {
	server := setupTestServer(t)

	req := roleRequest(t, http.MethodPost, server.URL+"/api/capabilities/teleport",
		model.RoleAdmin, model.SectionDashboard, nil)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("capability: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown capability, got %d", resp.StatusCode)
	}
}

func TestMetaVocabularies(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/meta")
	if err != nil {
		t.Fatalf("meta: %v", err)
	}

	var body struct {
		Bases          []string `json:"bases"`
		EquipmentTypes []string `json:"equipmentTypes"`
		Priorities     []string `json:"priorities"`
		DateRanges     []string `json:"dateRanges"`
	}
	decodeBody(t, resp, &body)

	if len(body.Bases) != 5 {
		t.Errorf("expected 5 bases, got %d", len(body.Bases))
	}
	if len(body.EquipmentTypes) != 7 {
		t.Errorf("expected 7 equipment types, got %d", len(body.EquipmentTypes))
	}
	if len(body.Priorities) != 4 {
		t.Errorf("expected 4 priorities, got %d", len(body.Priorities))
	}
	if len(body.DateRanges) != 5 {
		t.Errorf("expected 5 date ranges, got %d", len(body.DateRanges))
	}
}

func TestStatusUnconfiguredProbe(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}

	var body struct {
		Configured bool `json:"configured"`
		Connected  bool `json:"connected"`
	}
	decodeBody(t, resp, &body)

	if body.Configured || body.Connected {
		t.Error("expected unconfigured, disconnected status by default")
	}
}
