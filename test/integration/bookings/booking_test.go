package bookings_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"barkeep/pkg/model"
	"barkeep/test/integration/testutil"
)

// nextMonday returns the date of the next Monday, so the seeded weekly
// operating window always covers the requested slot.
func nextMonday() string {
	day := time.Now().UTC().AddDate(0, 0, 1)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day.Format("2006-01-02")
}

func seedBarWithInventory(t *testing.T, mongo *testutil.MongoHelper) (barID, tableID, drinkID, accountID string) {
	t.Helper()

	barID = mongo.Insert(t, testutil.BarsCollection, testutil.NewBarBuilder().WithDiscount(10).Build())
	tableID = mongo.Insert(t, testutil.TablesCollection, testutil.NewTableBuilder(barID).WithBasePrice(50).Build())
	drinkID = mongo.Insert(t, testutil.DrinksCollection, testutil.NewDrinkBuilder(barID).WithUnitPrice(10).Build())
	accountID = mongo.Insert(t, testutil.AccountsCollection, testutil.NewAccountBuilder().Build())
	mongo.Insert(t, testutil.WindowsCollection, testutil.NewWindowBuilder(barID).ForDay("Monday").Between("12:00", "23:00").Build())
	return
}

func decodeConfirmation(t *testing.T, resp *testutil.Response) *model.BookingConfirmation {
	t.Helper()
	var result struct {
		Data model.BookingConfirmation `json:"data"`
	}
	if err := resp.DecodeJSON(&result); err != nil {
		t.Fatalf("failed to decode confirmation: %v", err)
	}
	return &result.Data
}

func decodeBooking(t *testing.T, resp *testutil.Response) *model.Booking {
	t.Helper()
	var result struct {
		Data model.Booking `json:"data"`
	}
	if err := resp.DecodeJSON(&result); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}
	return &result.Data
}

func TestBookingLifecycle(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	barID, tableID, drinkID, accountID := seedBarWithInventory(t, mongo)
	headers := testutil.BearerHeaders(env.MintToken(t, accountID, model.RoleCustomer, ""))
	date := nextMonday()

	var bookingID string

	t.Run("create with table and drinks", func(t *testing.T) {
		payload := map[string]any{
			"bar_id":        barID,
			"booking_date":  date,
			"booking_clock": "20:00",
			"table_ids":     []string{tableID},
			"drinks": []map[string]any{
				{"drink_id": drinkID, "quantity": 2},
			},
		}

		resp := client.POSTWithHeaders(t, "/api/v1/bookings", payload, headers)
		testutil.AssertStatusCode(t, resp, http.StatusCreated)

		confirmation := decodeConfirmation(t, resp)
		if confirmation.Booking == nil {
			t.Fatal("confirmation has no booking")
		}
		bookingID = confirmation.Booking.ID

		// 50 table + 2x10 drinks with the bar's 10% drink discount.
		if got := confirmation.Booking.TotalPrice; got != 68 {
			t.Errorf("total price = %v, want 68", got)
		}
		if confirmation.Booking.Status != model.BookingPending {
			t.Errorf("status = %v, want pending", confirmation.Booking.Status)
		}
		if confirmation.Booking.TicketURL == "" {
			t.Error("expected a ticket URL on the confirmed booking")
		}
	})

	t.Run("fetch by id", func(t *testing.T) {
		resp := client.GETWithHeaders(t, "/api/v1/bookings/id/"+bookingID, headers)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		booking := decodeBooking(t, resp)
		if booking.AccountID != accountID {
			t.Errorf("account id = %q, want %q", booking.AccountID, accountID)
		}
		if len(booking.Tables) != 1 || booking.Tables[0].TableID != tableID {
			t.Errorf("unexpected tables: %+v", booking.Tables)
		}
	})

	t.Run("list own bookings", func(t *testing.T) {
		resp := client.GETWithHeaders(t, "/api/v1/bookings", headers)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertContains(t, resp, bookingID)
	})

	t.Run("cancel before cutoff", func(t *testing.T) {
		resp := client.POSTWithHeaders(t, fmt.Sprintf("/api/v1/bookings/id/%s/cancel", bookingID), nil, headers)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertContains(t, resp, `"cancelled":true`)

		fetched := decodeBooking(t, client.GETWithHeaders(t, "/api/v1/bookings/id/"+bookingID, headers))
		if fetched.Status != model.BookingCancelled {
			t.Errorf("status after cancel = %v, want cancelled", fetched.Status)
		}
	})
}

func TestBookingRejectsEmptyTableList(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	barID, _, _, accountID := seedBarWithInventory(t, mongo)
	headers := testutil.BearerHeaders(env.MintToken(t, accountID, model.RoleCustomer, ""))

	payload := map[string]any{
		"bar_id":        barID,
		"booking_date":  nextMonday(),
		"booking_clock": "20:00",
		"table_ids":     []string{},
	}

	resp := client.POSTWithHeaders(t, "/api/v1/bookings", payload, headers)
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	testutil.AssertContains(t, resp, "does not have table field")
}

func TestBookingOutsideOperatingWindow(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	barID, tableID, _, accountID := seedBarWithInventory(t, mongo)
	headers := testutil.BearerHeaders(env.MintToken(t, accountID, model.RoleCustomer, ""))

	payload := map[string]any{
		"bar_id":        barID,
		"booking_date":  nextMonday(),
		"booking_clock": "03:00",
		"table_ids":     []string{tableID},
	}

	resp := client.POSTWithHeaders(t, "/api/v1/bookings", payload, headers)
	testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
}
