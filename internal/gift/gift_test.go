package gift_test

import (
	"net/url"
	"testing"

	"github.com/shepherd-study/gift-checkout/internal/gift"
)

// ─── Price ───────────────────────────────────────────────────────────────────

func TestPrice_Tiers(t *testing.T) {
	cases := []struct {
		recipients int
		want       int64
	}{
		{1, 15000},
		{2, 24000},
		{3, 30000},
		{10, 100000},
	}
	for _, tc := range cases {
		if got := gift.Price(tc.recipients); got != tc.want {
			t.Errorf("Price(%d) = %d, want %d", tc.recipients, got, tc.want)
		}
	}
}

func TestPrice_ZeroRecipientsFallsThroughToZero(t *testing.T) {
	// Empty orders are rejected before pricing; this pins the fallback branch
	// so the rejection stays the only guard.
	if got := gift.Price(0); got != 0 {
		t.Errorf("Price(0) = %d, want 0", got)
	}
}

// ─── FormatNames ─────────────────────────────────────────────────────────────

func TestFormatNames(t *testing.T) {
	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"Alice"}, "Alice"},
		{[]string{"Alice", "Bob"}, "Alice and Bob"},
		{[]string{"Alice", "Bob", "Carl"}, "Alice, Bob and Carl"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := gift.FormatNames(tc.names); got != tc.want {
			t.Errorf("FormatNames(%v) = %q, want %q", tc.names, got, tc.want)
		}
	}
}

// ─── ParseRecipients ─────────────────────────────────────────────────────────

func TestParseRecipients_PreservesIndexOrder(t *testing.T) {
	form, err := url.ParseQuery("recipient_email1=a@x.com&recipient_name1=A&recipient_email2=b@x.com&recipient_name2=B")
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}

	got := gift.ParseRecipients(form)
	if len(got) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(got))
	}
	if got[0].Name != "A" || got[0].Email != "a@x.com" {
		t.Errorf("first recipient: %+v", got[0])
	}
	if got[1].Name != "B" || got[1].Email != "b@x.com" {
		t.Errorf("second recipient: %+v", got[1])
	}
}

func TestParseRecipients_UnsuffixedGroupComesFirst(t *testing.T) {
	form := url.Values{
		"recipient_email2": {"c@x.com"},
		"recipient_name2":  {"C"},
		"recipient_email":  {"a@x.com"},
		"recipient_name":   {"A"},
		"recipient_email1": {"b@x.com"},
		"recipient_name1":  {"B"},
	}

	got := gift.ParseRecipients(form)
	if len(got) != 3 {
		t.Fatalf("expected 3 recipients, got %d", len(got))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got[i].Name != want {
			t.Errorf("recipient %d: got %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestParseRecipients_CarriesPersonalMessage(t *testing.T) {
	form := url.Values{
		"recipient_email1":  {"a@x.com"},
		"recipient_name1":   {"A"},
		"recipientMessage1": {"happy birthday!"},
	}

	got := gift.ParseRecipients(form)
	if len(got) != 1 {
		t.Fatalf("expected 1 recipient, got %d", len(got))
	}
	if got[0].PersonalMessage != "happy birthday!" {
		t.Errorf("message: got %q", got[0].PersonalMessage)
	}
}

func TestParseRecipients_IgnoresOrphanNameFields(t *testing.T) {
	form := url.Values{
		"recipient_name1": {"orphan"},
		"user_email":      {"p@x.com"},
	}
	if got := gift.ParseRecipients(form); len(got) != 0 {
		t.Errorf("expected no recipients, got %d", len(got))
	}
}

// ─── Order ───────────────────────────────────────────────────────────────────

func TestOrder_AmountCents(t *testing.T) {
	o := gift.Order{Recipients: []gift.Recipient{{Name: "A"}, {Name: "B"}}}
	if got := o.AmountCents(); got != 24000 {
		t.Errorf("AmountCents = %d, want 24000", got)
	}
}

func TestFulfillmentReport_Counters(t *testing.T) {
	rep := gift.FulfillmentReport{
		Recipients: []gift.RecipientResult{
			{Email: "a@x.com", CouponIssued: true, EmailSent: true},
			{Email: "b@x.com", Err: errSentinel},
		},
	}
	if rep.Delivered() != 1 {
		t.Errorf("Delivered = %d, want 1", rep.Delivered())
	}
	if rep.Failed() != 1 {
		t.Errorf("Failed = %d, want 1", rep.Failed())
	}
}

var errSentinel = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
