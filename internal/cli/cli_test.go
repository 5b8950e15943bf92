package cli

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CLI", func() {
	var stdout, stderr *bytes.Buffer

	execute := func(args ...string) error {
		stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
		rootCmd.SetOut(stdout)
		rootCmd.SetErr(stderr)
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	BeforeEach(func() {
		cfgFile = "specrun.yaml"
		reportFiles = nil
		verbose = false
		rootCmd.PersistentFlags().Lookup("config").Changed = false
	})

	Describe("selfcheck", func() {
		It("should pass with the default configuration", func() {
			missing := filepath.Join(GinkgoT().TempDir(), "specrun.yaml")
			cfgFile = missing
			Expect(execute("selfcheck")).To(Succeed())
			Expect(stdout.String()).To(HavePrefix("A Feature\n"))
			Expect(stdout.String()).To(MatchRegexp(`\n(\d+) of (\d+) assertions passed\.\n$`))
			Expect(stdout.String()).ToNot(ContainSubstring("FAILED:"))
		})

		It("should write reports requested on the command line", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "specrun.yaml")
			Expect(os.WriteFile(path, []byte("logging:\n  level: error\n"), 0644)).To(Succeed())
			out := filepath.Join(dir, "run.yaml")
			page := filepath.Join(dir, "run.html")
			Expect(execute("selfcheck", "-c", path, "--report", out, "--report", page)).To(Succeed())
			Expect(out).To(BeAnExistingFile())
			Expect(page).To(BeAnExistingFile())
		})

		It("should print to stderr when configured", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "specrun.yaml")
			Expect(os.WriteFile(path, []byte("output:\n  stream: stderr\nlogging:\n  level: error\n"), 0644)).To(Succeed())
			Expect(execute("selfcheck", "-c", path)).To(Succeed())
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(ContainSubstring("assertions passed."))
		})

		It("should fail for an explicit missing config", func() {
			err := execute("selfcheck", "-c", filepath.Join(GinkgoT().TempDir(), "nope.yaml"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to load config"))
		})
	})

	Describe("validate", func() {
		It("should accept a valid config", func() {
			Expect(execute("validate", "-c", "../../testdata/configs/full.yaml")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("is valid."))
		})

		It("should reject an invalid config", func() {
			path := filepath.Join(GinkgoT().TempDir(), "bad.yaml")
			Expect(os.WriteFile(path, []byte("exit:\n  policy: sometimes\n"), 0644)).To(Succeed())
			err := execute("validate", "-c", path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("exit.policy"))
		})
	})

	Describe("templates", func() {
		It("should list the built-in templates and mark the default", func() {
			Expect(execute("templates", "-c", "../../testdata/configs/minimal.yaml")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("* markdown_report\n"))
		})
	})

	Describe("ExitStatus", func() {
		It("should describe the status", func() {
			Expect((&ExitStatus{Code: 3}).Error()).To(Equal("run finished with exit status 3"))
		})
	})
})
