// Package cli assembles the planner's command-line interface: repositories,
// document store, application services and the cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/application/services/auth"
	"github.com/magliflex/planner/pkg/application/services/catalog"
	"github.com/magliflex/planner/pkg/application/services/planning"
	"github.com/magliflex/planner/pkg/application/services/scheduling"
	"github.com/magliflex/planner/pkg/application/services/warehouse"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/infrastructure/config"
	"github.com/magliflex/planner/pkg/infrastructure/persistence"
	"github.com/magliflex/planner/pkg/infrastructure/repositories/memory"
	"github.com/magliflex/planner/pkg/interfaces/cli/output"
)

// App holds the assembled application a command runs against
type App struct {
	Config config.Config

	PhaseRepo        *memory.PhaseRepository
	MachineRepo      *memory.MachineRepository
	DepartmentRepo   *memory.DepartmentRepository
	MaterialRepo     *memory.MaterialRepository
	ArticleRepo      *memory.ArticleRepository
	PlanRepo         *memory.PlanRepository
	JournalRepo      *memory.JournalRepository
	NotificationRepo *memory.NotificationRepository
	UserRepo         *memory.UserRepository
	HolidayRepo      *memory.HolidayRepository

	Bridge    *persistence.Bridge
	Scheduler *scheduling.Scheduler
	Auth      *auth.Service
	Planning  *planning.Service
	Views     *planning.Views
	Warehouse *warehouse.Service
	Catalog   *catalog.Service

	User     *entities.User
	Renderer *output.Renderer
}

// newApp wires every layer against the given configuration
func newApp(cfg config.Config) *App {
	a := &App{
		Config:           cfg,
		PhaseRepo:        memory.NewPhaseRepository(),
		MachineRepo:      memory.NewMachineRepository(),
		DepartmentRepo:   memory.NewDepartmentRepository(),
		MaterialRepo:     memory.NewMaterialRepository(),
		ArticleRepo:      memory.NewArticleRepository(),
		PlanRepo:         memory.NewPlanRepository(),
		JournalRepo:      memory.NewJournalRepository(),
		NotificationRepo: memory.NewNotificationRepository(),
		UserRepo:         memory.NewUserRepository(),
		HolidayRepo:      memory.NewHolidayRepository(),
		Renderer:         output.NewRenderer(os.Stdout),
	}

	store := persistence.NewStore(cfg.DataFile)
	a.Bridge = persistence.NewBridge(
		store,
		a.PhaseRepo, a.MachineRepo, a.DepartmentRepo, a.MaterialRepo,
		a.ArticleRepo, a.PlanRepo, a.JournalRepo, a.NotificationRepo,
		a.UserRepo, a.HolidayRepo,
	)

	a.Scheduler = scheduling.NewSchedulerWithConfig(
		a.PhaseRepo, a.MachineRepo, a.DepartmentRepo, a.HolidayRepo,
		scheduling.Config{
			WorkingHoursPerDay: cfg.WorkingHoursPerDay,
			MaxPlanningDays:    cfg.MaxPlanningDays,
			HandoffDivisor:     cfg.HandoffDivisor,
			DepartmentDayHours: cfg.DepartmentDayHours,
		},
	)
	a.Auth = auth.NewService(a.UserRepo)
	a.Planning = planning.NewService(a.ArticleRepo, a.MaterialRepo, a.PlanRepo, a.Scheduler, a.Auth, a.Bridge)
	a.Views = planning.NewViews(a.PlanRepo, a.DepartmentRepo, a.HolidayRepo)
	a.Warehouse = warehouse.NewService(a.MaterialRepo, a.JournalRepo, a.NotificationRepo, a.Auth, a.Bridge)
	a.Catalog = catalog.NewService(
		a.PhaseRepo, a.MachineRepo, a.DepartmentRepo, a.MaterialRepo,
		a.ArticleRepo, a.HolidayRepo, a.PlanRepo, a.UserRepo,
		a.Auth, a.Bridge,
	)
	return a
}

// load reads the document into the repositories and repairs lots missing
// derived fields
func (a *App) load(cmd *cobra.Command) error {
	if err := a.Bridge.Load(); err != nil {
		return err
	}
	return a.Planning.RecalculateAll(cmd.Context())
}

// resolveUser looks up the acting account by username. The --user flag is
// trusted without a password: the data file lives in the operator's own
// home directory, so possession of the file is the effective credential.
// Accounts and roles exist for capability separation, not authentication;
// the credential check itself is exercised by the passwd command.
func (a *App) resolveUser(username string) error {
	user, err := a.UserRepo.GetUserByUsername(username)
	if err != nil {
		return fmt.Errorf("unknown user %q (run seed first, or check --user)", username)
	}
	if user.ForcePasswordChange {
		log.Warn().Str("username", user.Username).Msg("password change required, run planner passwd")
	}
	a.User = user
	return nil
}

// NewRootCommand builds the planner command tree
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		dataFile   string
		username   string
		app        *App
	)

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Production planning for a knitwear workshop",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dataFile != "" {
				cfg.DataFile = dataFile
			}
			setupLogging(cfg)
			app = newApp(cfg)

			// seed and import write a fresh document; they must not fail
			// on a missing or stale one.
			switch cmd.Name() {
			case "seed", "import":
				return nil
			}
			if err := app.load(cmd); err != nil {
				return err
			}
			return app.resolveUser(username)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&dataFile, "data", "", "path of the JSON document (overrides config)")
	root.PersistentFlags().StringVar(&username, "user", "admin", "acting username")

	appRef := func() *App { return app }
	root.AddCommand(
		newPlanCommand(appRef),
		newLotsCommand(appRef),
		newCalendarCommand(appRef),
		newMaterialsCommand(appRef),
		newJournalCommand(appRef),
		newNotificationsCommand(appRef),
		newCatalogCommand(appRef),
		newPasswdCommand(appRef),
		newSeedCommand(appRef),
		newImportCommand(appRef),
	)
	return root
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.LogJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
