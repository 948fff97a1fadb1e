package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/domain/entities"
)

func newCatalogCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the master data the planner schedules against",
	}
	cmd.AddCommand(
		newCatalogPhasesCommand(app),
		newCatalogMachinesCommand(app),
		newCatalogDepartmentsCommand(app),
		newCatalogMaterialsCommand(app),
		newCatalogArticlesCommand(app),
		newCatalogHolidaysCommand(app),
		newCatalogUsersCommand(app),
	)
	return cmd
}

func newCatalogPhasesCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List, add and delete processing phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			phases, err := a.PhaseRepo.GetAllPhases()
			if err != nil {
				return err
			}
			for _, p := range phases {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-36s %6.1f min/pc %8d pc/day\n",
					p.ID, p.Name, p.MinutesPerPiece, p.DailyCapacity)
			}
			return nil
		},
	}

	var (
		name          string
		minutes       float64
		dailyCapacity int64
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			phase, err := a.Catalog.CreatePhase(a.User, name, minutes, entities.Quantity(dailyCapacity))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "phase %s added\n", phase.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "phase name")
	add.Flags().Float64Var(&minutes, "minutes", 0, "nominal minutes per piece")
	add.Flags().Int64Var(&dailyCapacity, "daily-capacity", 0, "flat pieces-per-day capacity (0 when machine bound)")
	_ = add.MarkFlagRequired("name")

	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete <phase-id>",
		Short: "Delete a phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.Catalog.DeletePhase(a.User, entities.PhaseID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "phase %s deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newCatalogMachinesCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "machines",
		Short: "List, add and delete machines",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			machines, err := a.MachineRepo.GetAllMachines()
			if err != nil {
				return err
			}
			for _, m := range machines {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-36s fineness %2d %8.2f pc/h\n",
					m.ID, m.Name, m.Fineness, m.HourlyCapacity)
			}
			return nil
		},
	}

	var (
		name     string
		capacity float64
		fineness int
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a machine (the type is the first word of the name)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			machine, err := a.Catalog.CreateMachine(a.User, name, capacity, entities.Fineness(fineness))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "machine %s added\n", machine.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "machine name, e.g. \"Rettilinea Finezza 12 H\"")
	add.Flags().Float64Var(&capacity, "capacity", 0, "hourly capacity in pieces")
	add.Flags().IntVar(&fineness, "fineness", 0, "gauge fineness (0 when not gauge bound)")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("capacity")

	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete <machine-id>",
		Short: "Delete a machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.Catalog.DeleteMachine(a.User, entities.MachineID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "machine %s deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newCatalogDepartmentsCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "List, add and delete departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			departments, err := a.DepartmentRepo.GetAllDepartments()
			if err != nil {
				return err
			}
			for _, d := range departments {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-44s phases: %s\n",
					d.ID, d.Name, joinPhaseIDs(d.PhaseIDs))
			}
			return nil
		},
	}

	var (
		name       string
		types      []string
		finenesses []int
		phases     []string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			fs := make([]entities.Fineness, len(finenesses))
			for i, f := range finenesses {
				fs[i] = entities.Fineness(f)
			}
			pids := make([]entities.PhaseID, len(phases))
			for i, p := range phases {
				pids[i] = entities.PhaseID(p)
			}
			department, err := a.Catalog.CreateDepartment(a.User, name, types, fs, pids)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "department %s added\n", department.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "department name")
	add.Flags().StringSliceVar(&types, "types", nil, "machine types worked in this department")
	add.Flags().IntSliceVar(&finenesses, "finenesses", nil, "gauge finenesses worked in this department")
	add.Flags().StringSliceVar(&phases, "phases", nil, "phase ids this department covers")
	_ = add.MarkFlagRequired("name")

	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete <department-id>",
		Short: "Delete a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.Catalog.DeleteDepartment(a.User, entities.DepartmentID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "department %s deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newCatalogMaterialsCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List, add and delete raw materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			materials, err := a.MaterialRepo.GetAllMaterials()
			if err != nil {
				return err
			}
			for _, m := range materials {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-30s %10s %s\n", m.ID, m.Name, m.CurrentStock, m.Unit)
			}
			return nil
		},
	}

	var (
		name  string
		unit  string
		stock string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a raw material with its opening stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			opening, err := decimal.NewFromString(stock)
			if err != nil {
				return fmt.Errorf("invalid --stock: %w", err)
			}
			material, err := a.Catalog.CreateMaterial(a.User, name, unit, opening)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "material %s added\n", material.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "material name")
	add.Flags().StringVar(&unit, "unit", "", "unit of measure, e.g. kg or pz")
	add.Flags().StringVar(&stock, "stock", "0", "opening stock")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("unit")

	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete <material-id>",
		Short: "Delete a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.Catalog.DeleteMaterial(a.User, entities.MaterialID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "material %s deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newCatalogArticlesCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List, add and delete articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			articles, err := a.ArticleRepo.GetAllArticles()
			if err != nil {
				return err
			}
			for _, art := range articles {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-10s %-34s %d steps, %d bom lines\n",
					art.ID, art.Code, art.Description, len(art.Cycle), len(art.BOM))
			}
			return nil
		},
	}

	var (
		code        string
		description string
		steps       []string
		bomLines    []string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an article with its routing cycle and bill of materials",
		Long: `Add an article. Each --step is phase:minutes:hours, optionally extended to
phase:minutes:hours:machineType:fineness for machine-bound steps, in
production order. Each --bom is material:quantity:unit per piece.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			cycle := make([]entities.CycleStep, 0, len(steps))
			for _, s := range steps {
				step, err := parseCycleStep(s)
				if err != nil {
					return err
				}
				cycle = append(cycle, step)
			}
			bom := make([]entities.BOMLine, 0, len(bomLines))
			for _, l := range bomLines {
				line, err := parseBOMLine(l)
				if err != nil {
					return err
				}
				bom = append(bom, line)
			}
			article, err := a.Catalog.CreateArticle(a.User, code, description, cycle, bom)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "article %s added\n", article.ID)
			return nil
		},
	}
	add.Flags().StringVar(&code, "code", "", "article code")
	add.Flags().StringVar(&description, "description", "", "article description")
	add.Flags().StringArrayVar(&steps, "step", nil, "routing step, phase:minutes:hours[:machineType:fineness]")
	add.Flags().StringArrayVar(&bomLines, "bom", nil, "bill-of-materials line, material:quantity:unit")
	_ = add.MarkFlagRequired("code")

	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete <article-id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.Catalog.DeleteArticle(a.User, entities.ArticleID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "article %s deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newCatalogHolidaysCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List, add and delete non-working dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			holidays, err := a.HolidayRepo.GetAllHolidays()
			if err != nil {
				return err
			}
			for _, h := range holidays {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-12s %s\n", h.ID, h.Date, h.Description)
			}
			return nil
		},
	}

	var (
		date        string
		description string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a non-working date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			holiday, err := a.Catalog.AddHoliday(a.User, date, description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "holiday %s added\n", holiday.ID)
			return nil
		},
	}
	add.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	add.Flags().StringVar(&description, "description", "", "label, e.g. Ferragosto")
	_ = add.MarkFlagRequired("date")

	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete <holiday-id>",
		Short: "Delete a recorded holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.Catalog.RemoveHoliday(a.User, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "holiday %s deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newCatalogUsersCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List, add and delete application accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			users, err := a.UserRepo.GetAllUsers()
			if err != nil {
				return err
			}
			for _, u := range users {
				roles := make([]string, len(u.Roles))
				for i, r := range u.Roles {
					roles[i] = string(r)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-16s %s\n", u.ID, u.Username, strings.Join(roles, ","))
			}
			return nil
		},
	}

	var (
		username string
		password string
		roles    []string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an account; it must change its password at first use",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			parsed, err := parseRoles(roles)
			if err != nil {
				return err
			}
			user, err := a.Catalog.CreateUser(a.User, username, password, parsed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s added\n", user.ID)
			return nil
		},
	}
	add.Flags().StringVar(&username, "username", "", "login name")
	add.Flags().StringVar(&password, "password", "", "initial password")
	add.Flags().StringSliceVar(&roles, "roles", nil, "roles: admin, planning, warehouse")
	_ = add.MarkFlagRequired("username")
	_ = add.MarkFlagRequired("password")

	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.Catalog.DeleteUser(a.User, entities.UserID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func parseCycleStep(s string) (entities.CycleStep, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 && len(parts) != 5 {
		return entities.CycleStep{}, fmt.Errorf("step must be phase:minutes:hours or phase:minutes:hours:machineType:fineness, got %q", s)
	}
	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return entities.CycleStep{}, fmt.Errorf("invalid minutes in step %q: %w", s, err)
	}
	hours, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return entities.CycleStep{}, fmt.Errorf("invalid hours in step %q: %w", s, err)
	}
	step := entities.CycleStep{
		PhaseID:         entities.PhaseID(parts[0]),
		MinutesPerPiece: minutes,
		HoursPerUnit:    hours,
	}
	if len(parts) == 5 {
		fineness, err := strconv.Atoi(parts[4])
		if err != nil {
			return entities.CycleStep{}, fmt.Errorf("invalid fineness in step %q: %w", s, err)
		}
		step.MachineType = parts[3]
		step.Fineness = entities.Fineness(fineness)
	}
	return step, nil
}

func parseBOMLine(s string) (entities.BOMLine, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return entities.BOMLine{}, fmt.Errorf("bom line must be material:quantity:unit, got %q", s)
	}
	qty, err := decimal.NewFromString(parts[1])
	if err != nil {
		return entities.BOMLine{}, fmt.Errorf("invalid quantity in bom line %q: %w", s, err)
	}
	line, err := entities.NewBOMLine(entities.MaterialID(parts[0]), qty, parts[2])
	if err != nil {
		return entities.BOMLine{}, err
	}
	return *line, nil
}

func parseRoles(names []string) ([]entities.Role, error) {
	roles := make([]entities.Role, 0, len(names))
	for _, n := range names {
		switch r := entities.Role(n); r {
		case entities.RoleAdmin, entities.RolePlanning, entities.RoleWarehouse:
			roles = append(roles, r)
		default:
			return nil, fmt.Errorf("unknown role %q", n)
		}
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("at least one role is required")
	}
	return roles, nil
}

func joinPhaseIDs(ids []entities.PhaseID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}
