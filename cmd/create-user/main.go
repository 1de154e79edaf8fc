// CLI tool to create a profile interactively and print its energy targets.
// Usage: go run ./cmd/create-user
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"lg/nutri-go-api/internal/nutrition"
)

type profileInput struct {
	Name    string
	Profile nutrition.Profile
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	in, err := readProfile(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
		os.Exit(1)
	}
	energy, err := nutrition.ComputeEnergy(in.Profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	p := in.Profile
	var userID int
	err = conn.QueryRow(ctx,
		`INSERT INTO users (name, sex, age, weight_kg, height_cm, activity, goal)
		 VALUES (@name, @sex, @age, @weight_kg, @height_cm, @activity, @goal) RETURNING id`,
		pgx.NamedArgs{
			"name":      in.Name,
			"sex":       string(p.Sex),
			"age":       p.Age,
			"weight_kg": p.WeightKG,
			"height_cm": p.HeightCM,
			"activity":  string(p.Activity),
			"goal":      string(p.Goal),
		},
	).Scan(&userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user: %v\n", err)
		os.Exit(1)
	}

	r := energy.Rounded()
	fmt.Printf("\nUser created successfully!\n")
	fmt.Printf("  ID:          %d\n", userID)
	fmt.Printf("  Name:        %s\n", in.Name)
	fmt.Printf("  BMR:         %.0f kcal\n", r.BMR)
	fmt.Printf("  TDEE:        %.0f kcal\n", r.TDEE)
	fmt.Printf("  Recommended: %.0f kcal\n", r.RecommendedCalories)
}

// readProfile prompts for each field on out and parses the answers from r.
func readProfile(r *bufio.Reader, out io.Writer) (profileInput, error) {
	ask := func(prompt string) string {
		fmt.Fprint(out, prompt)
		line, _ := r.ReadString('\n')
		return strings.TrimSpace(line)
	}

	var in profileInput
	if in.Name = ask("Name: "); in.Name == "" {
		return in, fmt.Errorf("name is required")
	}

	var err error
	if in.Profile.Sex, err = nutrition.ParseSex(ask("Sex (male/female): ")); err != nil {
		return in, err
	}
	if in.Profile.Age, err = strconv.Atoi(ask("Age (years): ")); err != nil {
		return in, fmt.Errorf("age: %w", err)
	}
	if in.Profile.WeightKG, err = strconv.ParseFloat(ask("Weight (kg): "), 64); err != nil {
		return in, fmt.Errorf("weight: %w", err)
	}
	if in.Profile.HeightCM, err = strconv.ParseFloat(ask("Height (cm): "), 64); err != nil {
		return in, fmt.Errorf("height: %w", err)
	}
	if in.Profile.Activity, err = nutrition.ParseActivity(ask("Activity (sedentary/light/moderate/active/very_active): ")); err != nil {
		return in, err
	}
	if in.Profile.Goal, err = nutrition.ParseGoal(ask("Goal (lose/maintain/gain): ")); err != nil {
		return in, err
	}
	return in, nil
}
