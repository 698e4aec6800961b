package api

import (
	"encoding/json"
	"testing"
)

func TestCalories_AcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Calories
	}{
		{"number", `{"calorieCount": 520}`, "520"},
		{"float", `{"calorieCount": 512.5}`, "512.5"},
		{"string", `{"calorieCount": " about 500 "}`, "about 500"},
		{"null", `{"calorieCount": null}`, ""},
		{"absent", `{}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Recipe
			if err := json.Unmarshal([]byte(tc.in), &r); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if r.CalorieCount != tc.want {
				t.Fatalf("CalorieCount = %q, want %q", r.CalorieCount, tc.want)
			}
		})
	}
}

func TestCalories_MarshalKeepsNumbersNumeric(t *testing.T) {
	out, err := json.Marshal(Recipe{Name: "Soup", CalorieCount: "450"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if _, ok := raw["calorieCount"].(float64); !ok {
		t.Fatalf("calorieCount = %#v, want JSON number", raw["calorieCount"])
	}
	if _, ok := raw["id"]; ok {
		t.Fatalf("id present in %s, want omitted for unsaved recipe", out)
	}
}

func TestUser_MergeOverwritesOnlyPresentFields(t *testing.T) {
	base := User{
		ID:          "user_1",
		Preferences: Preferences{Theme: "dark", DefaultDiet: "Vegan"},
		Cookbook:    []Recipe{{ID: "r1", Name: "Soup"}},
		Pantry:      []string{"Salt"},
	}

	var patch UserPatch
	if err := json.Unmarshal([]byte(`{"pantry":["Rice","Beans"],"preferences":{"theme":"light"}}`), &patch); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	got := base.Merge(patch)

	if got.ID != "user_1" {
		t.Fatalf("ID = %q, want user_1 kept", got.ID)
	}
	if len(got.Cookbook) != 1 || got.Cookbook[0].ID != "r1" {
		t.Fatalf("Cookbook = %#v, want untouched", got.Cookbook)
	}
	if len(got.Pantry) != 2 || got.Pantry[0] != "Rice" {
		t.Fatalf("Pantry = %#v, want [Rice Beans]", got.Pantry)
	}
	// Preferences are replaced wholesale, not deep merged.
	if got.Preferences.Theme != "light" || got.Preferences.DefaultDiet != "" {
		t.Fatalf("Preferences = %#v, want {light, \"\"}", got.Preferences)
	}
	if base.Pantry[0] != "Salt" {
		t.Fatalf("Merge mutated receiver pantry: %#v", base.Pantry)
	}
}

func TestUser_MergeEmptyCollections(t *testing.T) {
	base := User{Cookbook: []Recipe{{ID: "r1"}}, Pantry: []string{"Salt"}}
	var patch UserPatch
	if err := json.Unmarshal([]byte(`{"cookbook":[],"pantry":[]}`), &patch); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	got := base.Merge(patch)
	if got.Cookbook == nil || len(got.Cookbook) != 0 {
		t.Fatalf("Cookbook = %#v, want empty non-nil", got.Cookbook)
	}
	if got.Pantry == nil || len(got.Pantry) != 0 {
		t.Fatalf("Pantry = %#v, want empty non-nil", got.Pantry)
	}
}

func TestMealPlan_SlotsAndClone(t *testing.T) {
	var plan MealPlan
	if err := json.Unmarshal([]byte(`{"Monday":{"breakfast":null,"lunch":"r1","dinner":null}}`), &plan); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if got := plan["Monday"].Slot("lunch"); got != "r1" {
		t.Fatalf("Slot(lunch) = %q, want r1", got)
	}
	if got := plan["Monday"].Slot("breakfast"); got != "" {
		t.Fatalf("Slot(breakfast) = %q, want empty", got)
	}

	dup := plan.Clone()
	dup["Monday"] = dup["Monday"].WithSlot("lunch", "r2")
	if got := plan["Monday"].Slot("lunch"); got != "r1" {
		t.Fatalf("original Slot(lunch) = %q after clone edit, want r1", got)
	}

	out, err := json.Marshal(MealPlan{"Tuesday": DayPlan{}.WithSlot("dinner", "r3")})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	want := `{"Tuesday":{"breakfast":null,"lunch":null,"dinner":"r3"}}`
	if string(out) != want {
		t.Fatalf("Marshal = %s, want %s", out, want)
	}
}

func TestMessageOfAndKindOf(t *testing.T) {
	if got := MessageOf(nil); got != "" {
		t.Fatalf("MessageOf(nil) = %q, want empty", got)
	}
	v := Validation("Please enter at least one ingredient.")
	if KindOf(v) != KindValidation || MessageOf(v) != v.Message {
		t.Fatalf("validation error kind/message = %v/%q", KindOf(v), MessageOf(v))
	}
	nf := NotFound("nowhere")
	if KindOf(nf) != KindNotFound || nf.Kind.String() != "not-found" {
		t.Fatalf("NotFound kind = %v", nf.Kind)
	}
	if KindOf(json.Unmarshal([]byte("{"), &struct{}{})) != KindTransport {
		t.Fatalf("foreign errors should classify as transport")
	}
}
