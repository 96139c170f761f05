package tipjar

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tipjarz/tipjarz/internal/database"
	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

func doJSON(t *testing.T, svc *Service, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	svc := newTestService(t, &mockStore{})

	rec := doJSON(t, svc, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "ok" || body["service"] != "tipjar" {
		t.Errorf("body = %v", body)
	}
}

func TestCreateCreatorEndpoint(t *testing.T) {
	var stored *tipjarsupabase.Creator
	store := &mockStore{
		createCreator: func(_ context.Context, c *tipjarsupabase.Creator) error {
			stored = c
			return nil
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodPost, "/creators", map[string]any{
		"creatorId":     "alice",
		"walletAddress": validAddress,
		"bio":           "Painter",
		"content":       "Weekly sketches",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if stored == nil || stored.CreatorID != "alice" || stored.WalletAddress != validAddress {
		t.Errorf("stored creator = %+v", stored)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
}

func TestCreateCreatorEndpointValidation(t *testing.T) {
	svc := newTestService(t, &mockStore{})

	rec := doJSON(t, svc, http.MethodPost, "/creators", map[string]any{
		"creatorId":     "alice",
		"walletAddress": "nope",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v", body["success"])
	}
	details, ok := body["details"].(map[string]any)
	if !ok {
		t.Fatalf("details missing: %v", body)
	}
	if _, ok := details["walletAddress"]; !ok {
		t.Errorf("details = %v, want walletAddress entry", details)
	}
}

func TestGetCreatorEndpoint(t *testing.T) {
	store := &mockStore{
		getCreator: func(_ context.Context, id string) (*tipjarsupabase.Creator, error) {
			return &tipjarsupabase.Creator{CreatorID: id, WalletAddress: validAddress, Bio: "Painter", Content: "Sketches"}, nil
		},
		listConfirmedTips: func(_ context.Context, _ string, _ int) ([]tipjarsupabase.Tip, error) {
			return []tipjarsupabase.Tip{{TipID: "tip_1", Amount: "0.25", Currency: "ETH"}}, nil
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodGet, "/creators?creatorId=alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	creator, ok := body["creator"].(map[string]any)
	if !ok {
		t.Fatalf("creator missing: %v", body)
	}
	stats, ok := creator["stats"].(map[string]any)
	if !ok {
		t.Fatalf("stats missing: %v", creator)
	}
	if stats["totalTips"] != float64(1) || stats["totalAmount"] != "0.25" {
		t.Errorf("stats = %v", stats)
	}
}

func TestGetCreatorEndpointMissingID(t *testing.T) {
	svc := newTestService(t, &mockStore{})

	rec := doJSON(t, svc, http.MethodGet, "/creators", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetCreatorEndpointNotFound(t *testing.T) {
	store := &mockStore{
		getCreator: func(_ context.Context, _ string) (*tipjarsupabase.Creator, error) {
			return nil, database.ErrNotFound
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodGet, "/creators?creatorId=ghost", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateCreatorEndpointNotFound(t *testing.T) {
	store := &mockStore{
		updateCreator: func(_ context.Context, _ string, _ *tipjarsupabase.CreatorUpdate) (*tipjarsupabase.Creator, error) {
			return nil, database.ErrNotFound
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodPut, "/creators", map[string]any{
		"creatorId": "ghost",
		"bio":       "new bio",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateTipEndpoint(t *testing.T) {
	var stored *tipjarsupabase.Tip
	store := &mockStore{
		createTip: func(_ context.Context, tip *tipjarsupabase.Tip) error {
			stored = tip
			return nil
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodPost, "/tips", map[string]any{
		"creatorId":     "alice",
		"tipperAddress": validAddress,
		"amount":        "0.01",
		"currency":      "ETH",
		"message":       "keep it up",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if stored == nil {
		t.Fatal("tip not stored")
	}
	if stored.Status != tipjarsupabase.TipStatusPending {
		t.Errorf("status = %q, want pending", stored.Status)
	}
	if !strings.HasPrefix(stored.TipID, "tip_") {
		t.Errorf("TipID = %q, want tip_ prefix", stored.TipID)
	}
	if stored.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestListTipsEndpointLimit(t *testing.T) {
	var gotLimit int
	store := &mockStore{
		listConfirmedTips: func(_ context.Context, _ string, limit int) ([]tipjarsupabase.Tip, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := newTestService(t, store)

	doJSON(t, svc, http.MethodGet, "/tips?creatorId=alice", nil)
	if gotLimit != defaultTipListLimit {
		t.Errorf("default limit = %d, want %d", gotLimit, defaultTipListLimit)
	}

	doJSON(t, svc, http.MethodGet, "/tips?creatorId=alice&limit=25", nil)
	if gotLimit != 25 {
		t.Errorf("limit = %d, want 25", gotLimit)
	}

	// Out-of-range values fall back to the default.
	doJSON(t, svc, http.MethodGet, "/tips?creatorId=alice&limit=1000", nil)
	if gotLimit != defaultTipListLimit {
		t.Errorf("oversized limit = %d, want %d", gotLimit, defaultTipListLimit)
	}
}

func TestUpdateTipEndpoint(t *testing.T) {
	var gotUpd *tipjarsupabase.TipUpdate
	store := &mockStore{
		updateTip: func(_ context.Context, tipID string, upd *tipjarsupabase.TipUpdate) (*tipjarsupabase.Tip, error) {
			gotUpd = upd
			return &tipjarsupabase.Tip{TipID: tipID, Status: upd.Status}, nil
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodPut, "/tips", map[string]any{
		"tipId":           "tip_1",
		"status":          "confirmed",
		"transactionHash": "0xabc",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gotUpd == nil || gotUpd.Status != tipjarsupabase.TipStatusConfirmed {
		t.Fatalf("update = %+v", gotUpd)
	}
	if gotUpd.TransactionHash == nil || *gotUpd.TransactionHash != "0xabc" {
		t.Errorf("TransactionHash = %v", gotUpd.TransactionHash)
	}
}

func TestUpdateTipEndpointBadStatus(t *testing.T) {
	svc := newTestService(t, &mockStore{})

	rec := doJSON(t, svc, http.MethodPut, "/tips", map[string]any{
		"tipId":  "tip_1",
		"status": "settled",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListGatedContentRedactsSecret(t *testing.T) {
	store := &mockStore{
		listGatedContent: func(_ context.Context, _ string) ([]tipjarsupabase.GatedContent, error) {
			return []tipjarsupabase.GatedContent{{
				ContentID:     "content_1",
				CreatorID:     "alice",
				SecretContent: "do not leak",
				MinTipAmount:  "0.01",
				Title:         "Bonus",
				Description:   "Extra",
			}}, nil
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodGet, "/gated-content?creatorId=alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "do not leak") {
		t.Fatal("secret leaked in list view")
	}
	body := decodeBody(t, rec)
	items, ok := body["content"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("content = %v", body["content"])
	}
	item := items[0].(map[string]any)
	if _, present := item["secret_content"]; present {
		t.Error("secret_content key present in list item")
	}
	if item["min_tip_amount"] != "0.01" {
		t.Errorf("min_tip_amount = %v", item["min_tip_amount"])
	}
}

func TestUnlockEndpointForbidden(t *testing.T) {
	store := &mockStore{
		getGatedContent: func(_ context.Context, _ string) (*tipjarsupabase.GatedContent, error) {
			return gatedFixture("0.01"), nil
		},
		listConfirmedTipsByTipper: func(_ context.Context, _, _ string) ([]tipjarsupabase.Tip, error) {
			return []tipjarsupabase.Tip{{TipID: "tip_1", Amount: "0.004"}}, nil
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodPost, "/gated-content/unlock", map[string]any{
		"contentId":     "content_1",
		"tipperAddress": validAddress,
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v", body["success"])
	}
	if body["required"] != "0.01" || body["current"] != "0.004" || body["remaining"] != "0.006" {
		t.Errorf("progress fields = %v", body)
	}
	if strings.Contains(rec.Body.String(), "the secret") {
		t.Error("secret leaked on denial")
	}
}

func TestUnlockEndpointSuccess(t *testing.T) {
	store := &mockStore{
		getGatedContent: func(_ context.Context, _ string) (*tipjarsupabase.GatedContent, error) {
			return gatedFixture("0.01"), nil
		},
		listConfirmedTipsByTipper: func(_ context.Context, _, _ string) ([]tipjarsupabase.Tip, error) {
			return []tipjarsupabase.Tip{{TipID: "tip_1", Amount: "0.02"}}, nil
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodPost, "/gated-content/unlock", map[string]any{
		"contentId":     "content_1",
		"tipperAddress": validAddress,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	content, ok := body["content"].(map[string]any)
	if !ok {
		t.Fatalf("content missing: %v", body)
	}
	if content["secret_content"] != "the secret" {
		t.Errorf("secret_content = %v", content["secret_content"])
	}
}

func TestUnlockEndpointContentNotFound(t *testing.T) {
	store := &mockStore{
		getGatedContent: func(_ context.Context, _ string) (*tipjarsupabase.GatedContent, error) {
			return nil, database.ErrNotFound
		},
	}
	svc := newTestService(t, store)

	rec := doJSON(t, svc, http.MethodPost, "/gated-content/unlock", map[string]any{
		"contentId":     "content_missing",
		"tipperAddress": validAddress,
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestWalletTipEndpoint(t *testing.T) {
	svc := newTestService(t, &mockStore{})

	rec := doJSON(t, svc, http.MethodPost, "/wallet/tip", map[string]any{
		"payerAddress": validAddress,
		"payeeAddress": validAddress,
		"amount":       "0.01",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	hash, _ := body["hash"].(string)
	if !strings.HasPrefix(hash, "0x") || len(hash) != 66 {
		t.Errorf("hash = %q", hash)
	}
}

func TestWalletTipEndpointFailure(t *testing.T) {
	svc, err := New(Config{
		DB:     &mockStore{},
		Wallet: NewSimulatedWallet(0, 0),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := doJSON(t, svc, http.MethodPost, "/wallet/tip", map[string]any{
		"payerAddress": validAddress,
		"payeeAddress": validAddress,
		"amount":       "0.01",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "transaction failed" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestWalletAddressEndpoint(t *testing.T) {
	svc := newTestService(t, &mockStore{})

	rec := doJSON(t, svc, http.MethodGet, "/wallet/address", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["address"] != "0x1234567890123456789012345678901234567890" || body["balance"] != "1.5" {
		t.Errorf("body = %v", body)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	svc := newTestService(t, &mockStore{})

	req := httptest.NewRequest(http.MethodPost, "/tips", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
