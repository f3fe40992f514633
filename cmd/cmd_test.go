package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	v1 "github.com/tupyy/parcm/api/v1"
	"github.com/tupyy/parcm/internal/config"
)

var _ = Describe("Commands", func() {
	var (
		dir string
		cfg *config.Configuration
		out *bytes.Buffer
	)

	BeforeEach(func() {
		color.NoColor = true
		dir = GinkgoT().TempDir()
		cfg = config.NewConfigurationWithOptionsAndDefaults()
		out = &bytes.Buffer{}
	})

	execute := func(args ...string) error {
		root := NewRootCommand(cfg)
		root.SetOut(out)
		root.SetErr(out)
		root.SetArgs(args)
		return root.Execute()
	}

	writeWorkbook := func() string {
		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)
		Expect(f.SetSheetRow(sheet, "A1", &[]any{"index", "title", "artist"})).To(Succeed())
		Expect(f.SetSheetRow(sheet, "A2", &[]any{0, "Kind of Blue", "Miles Davis"})).To(Succeed())
		Expect(f.SetSheetRow(sheet, "A3", &[]any{1, "Blue Train", "John Coltrane"})).To(Succeed())
		path := filepath.Join(dir, "catalog.xlsx")
		Expect(f.SaveAs(path)).To(Succeed())
		return path
	}

	// Given a workbook and a catalog file
	// When the workbook is imported and the catalog listed
	// Then the albums are persisted between commands
	It("should import and list albums", func() {
		db := filepath.Join(dir, "catalog.duckdb")
		workbook := writeWorkbook()

		Expect(execute("import", workbook, "--db", db, "--log-level", "error")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("imported 2 albums"))

		out.Reset()
		cfg = config.NewConfigurationWithOptionsAndDefaults()
		Expect(execute("albums", "--db", db, "--log-level", "error")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Kind of Blue"))
		Expect(out.String()).To(ContainSubstring("Blue Train"))
		Expect(out.String()).To(ContainSubstring("2 of 2 albums"))
	})

	It("should filter the listing by artist", func() {
		db := filepath.Join(dir, "catalog.duckdb")
		Expect(execute("import", writeWorkbook(), "--db", db, "--log-level", "error")).To(Succeed())

		out.Reset()
		cfg = config.NewConfigurationWithOptionsAndDefaults()
		Expect(execute("albums", "--db", db, "--artist", "Miles Davis", "--log-level", "error")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Kind of Blue"))
		Expect(out.String()).NotTo(ContainSubstring("Blue Train"))
	})

	It("should require a workbook argument", func() {
		Expect(execute("import", "--log-level", "error")).To(HaveOccurred())
	})

	It("should reject an unknown log level", func() {
		Expect(execute("albums", "--log-level", "loud")).To(MatchError(ContainSubstring("invalid log level")))
	})

	It("should print the status of a running player", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(v1.PlayerStatus{
				State: v1.PlayerStatePlaying,
				NowPlaying: &v1.NowPlaying{
					Album:    v1.Album{Index: 3, Title: "Giant Steps", Artist: "John Coltrane"},
					Degraded: []string{"cover"},
				},
				Pool: v1.PoolStats{Workers: 4, Active: 1},
			})
		}))
		defer srv.Close()

		Expect(execute("player", "status", "--server", srv.URL, "--log-level", "error")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("playing:  3 John Coltrane - Giant Steps"))
		Expect(out.String()).To(ContainSubstring("degraded: cover"))
		Expect(out.String()).To(ContainSubstring("pool:     1/4 busy"))
	})

	It("should read flags from a config file", func() {
		path := filepath.Join(dir, "parcm.yaml")
		Expect(os.WriteFile(path, []byte("log-level: error\ndb: "+filepath.Join(dir, "from-file.duckdb")+"\n"), 0o600)).To(Succeed())

		Expect(execute("albums", "--config", path)).To(Succeed())
		Expect(cfg.LogLevel).To(Equal("error"))
		Expect(filepath.Join(dir, "from-file.duckdb")).To(BeAnExistingFile())
	})
})
