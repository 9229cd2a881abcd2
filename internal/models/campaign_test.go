package models

import "testing"

func TestGoalIcon(t *testing.T) {
	tests := []struct {
		goal    string
		icon    string
		wantErr bool
	}{
		{GoalWebsiteTraffic, "CursorClick", false},
		{GoalBrandAwareness, "Eye", false},
		{GoalOnlineLeads, "Users", false},
		{GoalOnlineSales, "ShoppingCart", false},
		{"offline-sales", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			icon, err := GoalIcon(tt.goal)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GoalIcon(%q) expected error, got %q", tt.goal, icon)
				}
				return
			}
			if err != nil {
				t.Fatalf("GoalIcon(%q) unexpected error: %v", tt.goal, err)
			}
			if icon != tt.icon {
				t.Errorf("GoalIcon(%q) = %q, want %q", tt.goal, icon, tt.icon)
			}
		})
	}
}

func TestGoalNumericID(t *testing.T) {
	tests := []struct {
		goal string
		id   int
	}{
		{GoalWebsiteTraffic, 0},
		{GoalOnlineLeads, 1},
		{GoalOnlineSales, 2},
		{GoalBrandAwareness, 5},
	}

	for _, tt := range tests {
		if got := GoalNumericID(tt.goal); got != tt.id {
			t.Errorf("GoalNumericID(%q) = %d, want %d", tt.goal, got, tt.id)
		}
	}
}

func TestSupportsPlatform(t *testing.T) {
	c := &Campaign{SupportedPlatformIDs: []int{0, 1, 8}}

	if !c.SupportsPlatform(8) {
		t.Error("expected platform 8 to be supported")
	}
	if c.SupportsPlatform(17) {
		t.Error("expected platform 17 to be unsupported")
	}

	empty := &Campaign{}
	if empty.SupportsPlatform(0) {
		t.Error("expected no platforms supported on empty campaign")
	}
}
