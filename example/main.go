// Demonstrates using the planner as a library: build an in-memory dataset,
// schedule a lot both ways and print the results.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/magliflex/planner/pkg/application/services/auth"
	"github.com/magliflex/planner/pkg/application/services/planning"
	"github.com/magliflex/planner/pkg/application/services/scheduling"
	"github.com/magliflex/planner/pkg/infrastructure/repositories/memory"
	"github.com/magliflex/planner/pkg/infrastructure/seed"
	"github.com/magliflex/planner/pkg/interfaces/cli/output"
)

func main() {
	ctx := context.Background()

	phaseRepo := memory.NewPhaseRepository()
	machineRepo := memory.NewMachineRepository()
	departmentRepo := memory.NewDepartmentRepository()
	materialRepo := memory.NewMaterialRepository()
	articleRepo := memory.NewArticleRepository()
	planRepo := memory.NewPlanRepository()
	holidayRepo := memory.NewHolidayRepository()
	userRepo := memory.NewUserRepository()

	doc := seed.Document(time.Now())
	check(phaseRepo.LoadPhases(doc.Phases))
	check(machineRepo.LoadMachines(doc.Machines))
	check(departmentRepo.LoadDepartments(doc.Departments))
	check(materialRepo.LoadMaterials(doc.RawMaterials))
	check(articleRepo.LoadArticles(doc.Articles))
	check(userRepo.LoadUsers(doc.Users))

	scheduler := scheduling.NewScheduler(phaseRepo, machineRepo, departmentRepo, holidayRepo)
	authService := auth.NewService(userRepo)
	planner := planning.NewService(articleRepo, materialRepo, planRepo, scheduler, authService, planning.NopCommitter{})

	admin, err := userRepo.GetUserByUsername("admin")
	check(err)

	renderer := output.NewRenderer(os.Stdout)

	// Forward: start Monday of next week, when will 200 basic tees be done?
	start := nextMonday(time.Now())
	forward, err := planner.Calculate(ctx, planning.CalculateRequest{
		User:      admin,
		ArticleID: "art-001",
		Quantity:  200,
		StartDate: start,
	})
	check(err)
	renderer.ForwardSchedule(forward.Lot, forward.Forward)

	fmt.Println()

	// Backward: 50 integral sweaters due in three weeks, when must we start?
	backward, err := planner.Calculate(ctx, planning.CalculateRequest{
		User:         admin,
		ArticleID:    "art-003",
		Quantity:     50,
		DeliveryDate: start.AddDate(0, 0, 21),
	})
	check(err)
	renderer.BackwardSchedule(backward.Lot, backward.Backward)
}

func nextMonday(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
