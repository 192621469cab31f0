package browser_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"relish/internal/adapters/backend"
	web "relish/internal/adapters/http"
	"relish/internal/adapters/http/api"
	"relish/internal/adapters/storage"
	branchStore "relish/internal/adapters/storage/branch"
	coachStore "relish/internal/adapters/storage/coach"
	contactStore "relish/internal/adapters/storage/contact"
	facilityStore "relish/internal/adapters/storage/facility"
	sportStore "relish/internal/adapters/storage/sport"
	"relish/internal/application/orchestrators"
)

// testApp holds the running API, the site in front of it and Playwright handles.
type testApp struct {
	BaseURL string
	Stores  api.Stores
	Client  *backend.Client
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp starts the API over a seeded temp SQLite database and the site
// over that API, then launches headless Chromium.
// The test is skipped in short mode or when Playwright's driver is missing.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("failed to migrate test DB: %v", err)
	}

	stores := api.Stores{
		SportStore:    sportStore.NewSQLiteStore(db),
		FacilityStore: facilityStore.NewSQLiteStore(db),
		CoachStore:    coachStore.NewSQLiteStore(db),
		BranchStore:   branchStore.NewSQLiteStore(db),
		ContactStore:  contactStore.NewSQLiteStore(db),
	}
	ctx := context.Background()
	if err := orchestrators.ExecuteSeedCatalog(ctx, orchestrators.SeedCatalogDeps{
		SportStore:    stores.SportStore,
		FacilityStore: stores.FacilityStore,
		CoachStore:    stores.CoachStore,
		BranchStore:   stores.BranchStore,
		GenerateID:    func() string { return uuid.New().String() },
	}); err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}

	srvCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)

	apiSrv := httptest.NewServer(api.NewServer(api.Deps{Stores: stores}).Handler(srvCtx, api.Options{RateLimit: 1000}))
	t.Cleanup(apiSrv.Close)

	client := backend.New(apiSrv.URL)
	site, err := web.NewServer(client, nil)
	if err != nil {
		t.Fatalf("failed to build site: %v", err)
	}
	siteSrv := httptest.NewServer(site.Handler(srvCtx, web.Options{
		CSRFKey:   []byte("0123456789abcdef0123456789abcdef"),
		RateLimit: 1000,
	}))
	t.Cleanup(siteSrv.Close)

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright unavailable: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		t.Skipf("chromium unavailable: %v", err)
	}
	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
	})

	return &testApp{
		BaseURL: siteSrv.URL,
		Stores:  stores,
		Client:  client,
		PW:      pw,
		Browser: browser,
	}
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// open navigates to path and waits for the loaded fragment to replace the spinner.
func (a *testApp) open(t *testing.T, page playwright.Page, path string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + path); err != nil {
		t.Fatalf("failed to navigate to %s: %v", path, err)
	}
	err := page.Locator("[data-loaded=true]").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		t.Fatalf("%s never finished loading: %v", path, err)
	}
}
