package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Days lists meal plan days in display order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Meals lists the slots of a single day.
var Meals = []string{"breakfast", "lunch", "dinner"}

// Recipe mirrors the recipe payload used by every recipe endpoint. ID is empty
// until the recipe has been saved to the cookbook.
type Recipe struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"recipeName"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CalorieCount Calories `json:"calorieCount,omitempty"`
	TimeToCook   string   `json:"timeToCook,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

// Calories holds a calorie estimate that the backend may send either as a
// JSON number or as a string.
type Calories string

// UnmarshalJSON accepts numbers, strings and null.
func (c *Calories) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*c = ""
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Calories(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*c = Calories(n.String())
	}
	return nil
}

// MarshalJSON writes numeric values as numbers and anything else as a string.
func (c Calories) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(c), 64); err == nil {
		return []byte(c), nil
	}
	return json.Marshal(string(c))
}

// Saved reports whether the recipe carries a server-assigned id.
func (r Recipe) Saved() bool {
	return strings.TrimSpace(r.ID) != ""
}

// Clone returns a deep copy.
func (r Recipe) Clone() Recipe {
	r.Ingredients = cloneStrings(r.Ingredients)
	r.Instructions = cloneStrings(r.Instructions)
	return r
}

// Preferences holds the user's server-side preferences.
type Preferences struct {
	Theme       string `json:"theme,omitempty"`
	DefaultDiet string `json:"default_diet,omitempty"`
}

// DayPlan holds the recipe ids assigned to one day. Nil means unassigned.
type DayPlan struct {
	Breakfast *string `json:"breakfast"`
	Lunch     *string `json:"lunch"`
	Dinner    *string `json:"dinner"`
}

// Slot returns the recipe id assigned to meal, or "" when unassigned.
func (d DayPlan) Slot(meal string) string {
	var v *string
	switch meal {
	case "breakfast":
		v = d.Breakfast
	case "lunch":
		v = d.Lunch
	case "dinner":
		v = d.Dinner
	}
	if v == nil {
		return ""
	}
	return *v
}

// WithSlot returns a copy of d with meal set to id; an empty id clears it.
func (d DayPlan) WithSlot(meal, id string) DayPlan {
	var v *string
	if id != "" {
		v = &id
	}
	switch meal {
	case "breakfast":
		d.Breakfast = v
	case "lunch":
		d.Lunch = v
	case "dinner":
		d.Dinner = v
	}
	return d
}

// MealPlan maps a day name to its slots.
type MealPlan map[string]DayPlan

// Clone returns a copy that shares no slot pointers with m.
func (m MealPlan) Clone() MealPlan {
	if m == nil {
		return nil
	}
	out := make(MealPlan, len(m))
	for day, plan := range m {
		var dup DayPlan
		for _, meal := range Meals {
			dup = dup.WithSlot(meal, plan.Slot(meal))
		}
		out[day] = dup
	}
	return out
}

// User is the full user record returned by /api/user.
type User struct {
	ID          string      `json:"id,omitempty"`
	Preferences Preferences `json:"preferences"`
	Cookbook    []Recipe    `json:"cookbook"`
	Pantry      []string    `json:"pantry"`
	MealPlan    MealPlan    `json:"meal_plan"`
}

// Clone returns a deep copy.
func (u User) Clone() User {
	if u.Cookbook != nil {
		book := make([]Recipe, len(u.Cookbook))
		for i, r := range u.Cookbook {
			book[i] = r.Clone()
		}
		u.Cookbook = book
	}
	u.Pantry = cloneStrings(u.Pantry)
	u.MealPlan = u.MealPlan.Clone()
	return u
}

// Recipe looks up a cookbook entry by id.
func (u User) Recipe(id string) (Recipe, bool) {
	for _, r := range u.Cookbook {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// UserPatch is a partially populated user record. Nil fields were absent
// from the payload and leave the existing value untouched on merge.
type UserPatch struct {
	ID          *string      `json:"id"`
	Preferences *Preferences `json:"preferences"`
	Cookbook    *[]Recipe    `json:"cookbook"`
	Pantry      *[]string    `json:"pantry"`
	MealPlan    *MealPlan    `json:"meal_plan"`
}

// Merge overwrites the top-level fields present in p. Nested values are
// replaced wholesale, never merged.
func (u User) Merge(p UserPatch) User {
	out := u.Clone()
	if p.ID != nil {
		out.ID = *p.ID
	}
	if p.Preferences != nil {
		out.Preferences = *p.Preferences
	}
	if p.Cookbook != nil {
		out.Cookbook = User{Cookbook: *p.Cookbook}.Clone().Cookbook
		if out.Cookbook == nil {
			out.Cookbook = []Recipe{}
		}
	}
	if p.Pantry != nil {
		out.Pantry = cloneStrings(*p.Pantry)
		if out.Pantry == nil {
			out.Pantry = []string{}
		}
	}
	if p.MealPlan != nil {
		out.MealPlan = p.MealPlan.Clone()
	}
	return out
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Ingredients string   `json:"ingredients"`
	Cuisine     string   `json:"cuisine"`
	Diet        string   `json:"diet"`
	Pantry      []string `json:"pantry"`
}

// Suggestion is a named recommendation with the model's reasoning.
type Suggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Pairings maps a pairing category (e.g. "wine", "non_alcoholic") to a suggestion.
type Pairings map[string]Suggestion

type imageRequest struct {
	Query string `json:"query"`
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type modifyRequest struct {
	Recipe  Recipe `json:"recipe"`
	ModType string `json:"mod_type"`
}

type swapsRequest struct {
	Recipe     Recipe `json:"recipe"`
	Ingredient string `json:"ingredient"`
}

type pantryRequest struct {
	Pantry []string `json:"pantry"`
}

// Ack is the acknowledgement body returned by mutating endpoints.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
