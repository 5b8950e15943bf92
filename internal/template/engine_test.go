package template_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/GoSpecRunner/internal/domain"
	tmpl "github.com/fjglira/GoSpecRunner/internal/template"
)

func sampleReport() *domain.RunReport {
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.RunReport{
		ID:         "run-1",
		Title:      "Self-check",
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		Passed:     2,
		Failed:     2,
		Raised:     1,
		Features: []domain.FeatureReport{
			{
				What: "A Test Target",
				Cases: []domain.CaseReport{
					{
						How: "stores the subject",
						Assertions: []domain.AssertionRecord{
							{Subject: "42", Meaning: "should", Verb: "be", Expected: "42", Success: true},
							{Subject: "42", Meaning: "should not", Verb: "be", Expected: "21", Success: true},
						},
					},
					{
						How: "finds elements",
						Assertions: []domain.AssertionRecord{
							{Subject: "[]int{1, 2, 3}", Meaning: "should", Verb: "contain", Expected: "4"},
						},
					},
					{How: "explodes", Raised: "panic: boom"},
				},
			},
		},
	}
}

var _ = Describe("TemplateEngine", func() {
	var engine *tmpl.DefaultEngine

	BeforeEach(func() {
		var err error
		engine, err = tmpl.NewEngine("", "markdown_report")
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("ListTemplates", func() {
		It("should list the built-in templates", func() {
			Expect(engine.ListTemplates()).To(ContainElement("markdown_report"))
		})

		It("should add templates from a directory", func() {
			e, err := tmpl.NewEngine(filepath.Join("..", "..", "testdata", "templates"), "compact")
			Expect(err).ToNot(HaveOccurred())
			Expect(e.ListTemplates()).To(Equal([]string{"compact", "markdown_report"}))
		})
	})

	Describe("NewEngine", func() {
		It("should fail for an unknown default template", func() {
			_, err := tmpl.NewEngine("", "nope")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("markdown_report"))
		})

		It("should fail for a missing directory", func() {
			_, err := tmpl.NewEngine("nonexistent_dir", "markdown_report")
			Expect(err).To(HaveOccurred())
		})

		It("should fail for a broken template", func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "broken.tmpl"), []byte("{{ .Title "), 0644)).To(Succeed())
			_, err := tmpl.NewEngine(dir, "markdown_report")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to parse template"))
		})
	})

	Describe("Render", func() {
		It("should render the run as markdown", func() {
			out, err := engine.Render(sampleReport(), "")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(HavePrefix("# Self-check\n"))
			Expect(out).To(ContainSubstring("Run `run-1` finished 2026-01-02 03:04:06 UTC after 1.5s."))
			Expect(out).To(ContainSubstring("**2 failed. 2 of 4 assertions passed.**"))
			Expect(out).To(ContainSubstring("## A Test Target"))
			Expect(out).To(ContainSubstring("### ✔ stores the subject"))
			Expect(out).To(ContainSubstring("- ✔ `42 should not be 21`"))
			Expect(out).To(ContainSubstring("### ✘ finds elements"))
			Expect(out).To(ContainSubstring("- ✘ `[]int{1, 2, 3} should contain 4`"))
			Expect(out).To(ContainSubstring("> RAISED: panic: boom"))
		})

		It("should render a named template", func() {
			e, err := tmpl.NewEngine(filepath.Join("..", "..", "testdata", "templates"), "compact")
			Expect(err).ToNot(HaveOccurred())
			out, err := e.Render(sampleReport(), "")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("- A Test Target: 3 case(s)"))
			Expect(out).To(ContainSubstring("2 failed. 2 of 4 assertions passed."))
		})

		It("should fail for an unknown template", func() {
			_, err := engine.Render(sampleReport(), "nope")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Summary", func() {
		It("should use the clean-run wording without failures", func() {
			Expect(tmpl.Summary(&domain.RunReport{Passed: 3})).To(Equal("3 of 3 assertions passed."))
		})
	})
})
