package model

import "testing"

func TestDestinations_Order(t *testing.T) {
	got := Destinations()
	if len(got) != 2 {
		t.Fatalf("Expected 2 destinations, got %d", len(got))
	}
	if got[0] != DestinationIngredients || got[1] != DestinationRecipes {
		t.Errorf("Unexpected destination order: %v", got)
	}
	if DefaultDestination != DestinationIngredients {
		t.Errorf("Expected default destination %s, got %s", DestinationIngredients, DefaultDestination)
	}
}

func TestDestination_Label(t *testing.T) {
	tests := []struct {
		dest     Destination
		expected string
	}{
		{DestinationIngredients, "Ingredients"},
		{DestinationRecipes, "Recipes"},
		{Destination("other"), "Unknown"},
	}

	for _, test := range tests {
		if result := test.dest.Label(); result != test.expected {
			t.Errorf("Destination(%s).Label() = %s, expected %s", test.dest, result, test.expected)
		}
	}
}

func TestParseDestination(t *testing.T) {
	d, err := ParseDestination("recipes")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d != DestinationRecipes {
		t.Errorf("Expected %s, got %s", DestinationRecipes, d)
	}

	if _, err := ParseDestination("settings"); err == nil {
		t.Error("Expected error for unknown destination, got nil")
	}
}
