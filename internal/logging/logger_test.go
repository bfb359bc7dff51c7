package logging_test

import (
	"strings"

	"github.com/aggdata/projectrun/internal/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logging", func() {
	var stdout, stderr *strings.Builder

	BeforeEach(func() {
		stdout = new(strings.Builder)
		stderr = new(strings.Builder)
	})

	Describe("NewProductionLogger", func() {
		It("prints info messages verbatim to stdout", func() {
			log := logging.NewProductionLogger(stdout, stderr)
			log.Infoln("=== STDOUT ===")

			Expect(stdout.String()).To(Equal("=== STDOUT ===\n"))
			Expect(stderr.String()).To(BeEmpty())
		})

		It("prints errors with a level prefix to stderr", func() {
			log := logging.NewProductionLogger(stdout, stderr)
			log.Errorf("something broke")

			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(Equal("ERROR\tsomething broke\n"))
		})

		It("discards debug messages", func() {
			log := logging.NewProductionLogger(stdout, stderr)
			log.Debugf("resolved configuration")

			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(BeEmpty())
		})
	})

	Describe("NewDebugLogger", func() {
		It("prints debug messages to stderr", func() {
			log := logging.NewDebugLogger(stdout, stderr)
			log.Debugf("resolved configuration")

			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(ContainSubstring("resolved configuration"))
		})

		It("keeps info messages on stdout", func() {
			log := logging.NewDebugLogger(stdout, stderr)
			log.Infoln("✅ Script executed successfully.")

			Expect(stdout.String()).To(ContainSubstring("✅ Script executed successfully."))
			Expect(stderr.String()).To(BeEmpty())
		})
	})
})
