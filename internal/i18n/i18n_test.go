// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("button.add_flight"); got != "Add Flight" {
		t.Fatalf("expected 'Add Flight', got %q", got)
	}

	got := T("log.flight_added", "AA100", "NYC", "LAX")
	if got != "Flight AA100 added: NYC to LAX" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer Init("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("button.add_flight"); got != "Flug hinzufügen" {
		t.Fatalf("expected German translation, got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	if got := T("log.removal_canceled"); got != "Removal canceled." {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestT_MissingIDReturnsID(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected message id back, got %q", got)
	}
}
