package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/infrastructure/persistence"
)

// runCommand executes one invocation of the command tree against the given
// data file, the way a shell user would.
func runCommand(t *testing.T, dataFile string, args ...string) error {
	t.Helper()
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--data", dataFile}, args...))
	return root.Execute()
}

func seededFile(t *testing.T) string {
	t.Helper()
	dataFile := filepath.Join(t.TempDir(), "planner.json")
	require.NoError(t, runCommand(t, dataFile, "seed"))
	return dataFile
}

func readDocument(t *testing.T, dataFile string) *persistence.Document {
	t.Helper()
	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	var doc persistence.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	return &doc
}

func findMaterial(doc *persistence.Document, id entities.MaterialID) *entities.RawMaterial {
	for _, m := range doc.RawMaterials {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func findEntry(doc *persistence.Document, id entities.JournalEntryID) *entities.JournalEntry {
	for _, e := range doc.WarehouseJournal {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func TestMaterialsLoadCommand(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "materials", "load",
		"--material", "mat-cotton", "--qty", "100", "--ref", "Fornitore X")
	require.NoError(t, err)

	doc := readDocument(t, dataFile)
	cotton := findMaterial(doc, "mat-cotton")
	require.NotNil(t, cotton)
	assert.True(t, cotton.CurrentStock.Equal(decimal.NewFromInt(600)),
		"stock = %s, want 600", cotton.CurrentStock)
	assert.Len(t, doc.WarehouseJournal, 4)
}

func TestMaterialsConsumeCommand(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "materials", "consume",
		"--entry", "jrn-1", "--qty", "120")
	require.NoError(t, err)

	doc := readDocument(t, dataFile)
	cotton := findMaterial(doc, "mat-cotton")
	require.NotNil(t, cotton)
	assert.True(t, cotton.CurrentStock.Equal(decimal.NewFromInt(380)),
		"stock = %s, want 380", cotton.CurrentStock)

	loadEntry := findEntry(doc, "jrn-1")
	require.NotNil(t, loadEntry)
	require.NotNil(t, loadEntry.ActualConsumed)
	assert.True(t, loadEntry.ActualConsumed.Equal(decimal.NewFromInt(120)))

	// Registering a second consumption against the same load must fail.
	err = runCommand(t, dataFile, "materials", "consume",
		"--entry", "jrn-1", "--qty", "50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has a registered consumption")
}

func TestJournalDeleteCommand(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "journal", "delete", "jrn-2")
	require.NoError(t, err)

	doc := readDocument(t, dataFile)
	assert.Nil(t, findEntry(doc, "jrn-2"))
	buttons := findMaterial(doc, "mat-buttons")
	require.NotNil(t, buttons)
	assert.True(t, buttons.CurrentStock.IsZero(),
		"deleting the load must revert its stock, got %s", buttons.CurrentStock)
}

func TestWarehouseCommandsRequirePermission(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "--user", "planner", "materials", "load",
		"--material", "mat-cotton", "--qty", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warehouse permission")
}

func TestCatalogPhaseAddAndDelete(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "catalog", "phases", "add",
		"--name", "Stiro Vapore", "--minutes", "12", "--daily-capacity", "400")
	require.NoError(t, err)

	doc := readDocument(t, dataFile)
	var added *entities.Phase
	for _, p := range doc.Phases {
		if p.Name == "Stiro Vapore" {
			added = p
		}
	}
	require.NotNil(t, added)
	assert.Equal(t, entities.Quantity(400), added.DailyCapacity)

	require.NoError(t, runCommand(t, dataFile, "catalog", "phases", "delete", string(added.ID)))
	doc = readDocument(t, dataFile)
	for _, p := range doc.Phases {
		assert.NotEqual(t, "Stiro Vapore", p.Name)
	}
}

func TestCatalogPhaseDeleteGuardSurfaces(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "catalog", "phases", "delete", "phase-knit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be deleted")
}

func TestCatalogArticleAdd(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "catalog", "articles", "add",
		"--code", "ART-100", "--description", "Cardigan Merino",
		"--step", "phase-knit:60:1:Rettilinea:12",
		"--step", "phase-sew:20:0.33",
		"--bom", "mat-merino:0.4:kg")
	require.NoError(t, err)

	doc := readDocument(t, dataFile)
	var added *entities.Article
	for _, a := range doc.Articles {
		if a.Code == "ART-100" {
			added = a
		}
	}
	require.NotNil(t, added)
	require.Len(t, added.Cycle, 2)
	assert.Equal(t, "Rettilinea", added.Cycle[0].MachineType)
	assert.Equal(t, entities.Fineness(12), added.Cycle[0].Fineness)
	require.Len(t, added.BOM, 1)
	assert.True(t, added.BOM[0].QuantityPerUnit.Equal(decimal.NewFromFloat(0.4)))
}

func TestCatalogUserAddForcesPasswordChange(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "catalog", "users", "add",
		"--username", "maria", "--password", "changeme", "--roles", "warehouse")
	require.NoError(t, err)

	doc := readDocument(t, dataFile)
	var added *entities.User
	for _, u := range doc.Users {
		if u.Username == "maria" {
			added = u
		}
	}
	require.NotNil(t, added)
	assert.True(t, added.ForcePasswordChange)
	assert.Equal(t, []entities.Role{entities.RoleWarehouse}, added.Roles)
}

func TestCatalogCommandsRequireAdmin(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "--user", "warehouse", "catalog", "materials", "add",
		"--name", "Filato di Seta", "--unit", "kg", "--stock", "50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin permission")
}

func TestPasswdCommand(t *testing.T) {
	dataFile := seededFile(t)

	err := runCommand(t, dataFile, "passwd", "--current", "wrong", "--new", "s3cret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	require.NoError(t, runCommand(t, dataFile, "passwd", "--current", "admin", "--new", "s3cret"))

	doc := readDocument(t, dataFile)
	for _, u := range doc.Users {
		if u.Username == "admin" {
			assert.Equal(t, "s3cret", u.Password)
			assert.False(t, u.ForcePasswordChange)
		}
	}
}
