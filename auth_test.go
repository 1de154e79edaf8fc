package main

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func adminHash(t *testing.T, password string) []byte {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return hash
}

func TestAdminMiddleware(t *testing.T) {
	router, _ := setupHandlerTest(adminHash(t, "s3cret"))

	cases := []struct {
		name     string
		password string
		status   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong password", "nope", http.StatusUnauthorized},
		{"correct password", "s3cret", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.password != "" {
				headers[adminPasswordHeader] = tc.password
			}
			w := doRequest(router, "GET", "/api/admin/users", "", headers)
			if w.Code != tc.status {
				t.Errorf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestAdminMiddleware_NoHashConfigured(t *testing.T) {
	router, _ := setupHandlerTest(nil)

	w := doRequest(router, "GET", "/api/admin/foods", "", map[string]string{adminPasswordHeader: "dummy"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "invalid admin password" {
		t.Errorf("unexpected error message %q", msg)
	}
}

func TestAdminCreateFood(t *testing.T) {
	router, s := setupHandlerTest(adminHash(t, "s3cret"))
	auth := map[string]string{adminPasswordHeader: "s3cret"}

	w := doRequest(router, "POST", "/api/admin/foods",
		`{"name":"Tofu","meal_type":"Dinner","kcal_100g":76,"protein_100g":8,"fat_100g":4.8,"carb_100g":1.9}`, auth)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	foods := s.foods
	if len(foods) != 1 {
		t.Fatalf("expected 1 stored food, got %d", len(foods))
	}
	for _, f := range foods {
		if f.MealType == nil || *f.MealType != "dinner" {
			t.Errorf("meal_type not normalized: %+v", f.MealType)
		}
	}

	// Empty meal_type stores an unrestricted food; zero densities are legal.
	w = doRequest(router, "POST", "/api/admin/foods",
		`{"name":"Water","meal_type":"","kcal_100g":0,"protein_100g":0,"fat_100g":0,"carb_100g":0}`, auth)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	bad := []struct {
		name   string
		body   string
		status int
	}{
		{"missing density", `{"name":"X","kcal_100g":10,"protein_100g":1,"fat_100g":1}`, http.StatusBadRequest},
		{"negative density", `{"name":"X","kcal_100g":-1,"protein_100g":1,"fat_100g":1,"carb_100g":1}`, http.StatusBadRequest},
		{"unknown meal type", `{"name":"X","meal_type":"brunch","kcal_100g":1,"protein_100g":1,"fat_100g":1,"carb_100g":1}`, http.StatusBadRequest},
		{"duplicate name", `{"name":"Tofu","kcal_100g":1,"protein_100g":1,"fat_100g":1,"carb_100g":1}`, http.StatusConflict},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/admin/foods", tc.body, auth)
			if w.Code != tc.status {
				t.Errorf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}
