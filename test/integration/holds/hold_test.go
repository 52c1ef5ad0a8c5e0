package holds_test

import (
	"net/http"
	"testing"
	"time"

	"barkeep/pkg/model"
	"barkeep/test/integration/testutil"
)

func nextMonday() string {
	day := time.Now().UTC().AddDate(0, 0, 1)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day.Format("2006-01-02")
}

func decodeHoldResult(t *testing.T, resp *testutil.Response) *model.HoldResult {
	t.Helper()
	var result struct {
		Data model.HoldResult `json:"data"`
	}
	if err := resp.DecodeJSON(&result); err != nil {
		t.Fatalf("failed to decode hold result: %v", err)
	}
	return &result.Data
}

func TestHoldContention(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	barID := mongo.Insert(t, testutil.BarsCollection, testutil.NewBarBuilder().Build())
	tableID := mongo.Insert(t, testutil.TablesCollection, testutil.NewTableBuilder(barID).Build())
	mongo.Insert(t, testutil.WindowsCollection, testutil.NewWindowBuilder(barID).ForDay("Monday").Between("12:00", "23:00").Build())

	holderID := mongo.Insert(t, testutil.AccountsCollection, testutil.NewAccountBuilder().Build())
	rivalID := mongo.Insert(t, testutil.AccountsCollection, testutil.NewAccountBuilder().WithName("Noa").WithPhone("+972540000002").Build())

	holderHeaders := testutil.BearerHeaders(env.MintToken(t, holderID, model.RoleCustomer, ""))
	rivalHeaders := testutil.BearerHeaders(env.MintToken(t, rivalID, model.RoleCustomer, ""))

	date := nextMonday()
	payload := map[string]any{
		"bar_id":   barID,
		"table_id": tableID,
		"date":     date,
		"clock":    "20:00",
	}

	t.Run("first caller acquires the slot", func(t *testing.T) {
		resp := client.POSTWithHeaders(t, "/api/v1/holds", payload, holderHeaders)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		result := decodeHoldResult(t, resp)
		if !result.IsHeld {
			t.Error("expected the slot to be held")
		}
		if result.SlotToken == "" {
			t.Error("expected a slot token")
		}
		if !result.HoldExpiry.After(time.Now()) {
			t.Errorf("hold expiry %v is not in the future", result.HoldExpiry)
		}
	})

	t.Run("rival caller is rejected", func(t *testing.T) {
		resp := client.POSTWithHeaders(t, "/api/v1/holds", payload, rivalHeaders)
		testutil.AssertStatusCode(t, resp, http.StatusConflict)
		testutil.AssertContains(t, resp, "already held")
	})

	t.Run("same caller refreshes the hold", func(t *testing.T) {
		resp := client.POSTWithHeaders(t, "/api/v1/holds", payload, holderHeaders)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("slot listing marks the held table", func(t *testing.T) {
		resp := client.GETWithHeaders(t, "/api/v1/holds?bar_id="+barID+"&date="+date+"&clock=20:00", holderHeaders)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			Data []model.TableSlotStatus `json:"data"`
		}
		if err := resp.DecodeJSON(&result); err != nil {
			t.Fatalf("failed to decode slot statuses: %v", err)
		}
		if len(result.Data) != 1 {
			t.Fatalf("expected 1 table, got %d", len(result.Data))
		}
		if !result.Data[0].IsHeld {
			t.Error("expected the table to show as held")
		}
	})
}
