package exec_test

import (
	"context"
	"strings"

	"github.com/aggdata/projectrun/internal/errors"
	"github.com/aggdata/projectrun/internal/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local", func() {
	var (
		ctx    context.Context
		runner exec.Local
		stdout *strings.Builder
		stderr *strings.Builder
	)

	BeforeEach(func() {
		ctx = context.Background()
		runner = exec.Local{}
		stdout = new(strings.Builder)
		stderr = new(strings.Builder)
	})

	run := func(cfg exec.CommandConfig) error {
		cfg.Stdout = stdout
		cfg.Stderr = stderr

		cmd, err := runner.NewCommand(ctx, cfg)
		Expect(err).NotTo(HaveOccurred())

		if err := cmd.Start(); err != nil {
			return err
		}

		return cmd.Wait()
	}

	It("captures both output streams", func() {
		err := run(exec.CommandConfig{Name: "sh", Args: []string{"-c", "echo out; echo err >&2"}})

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(Equal("out\n"))
		Expect(stderr.String()).To(Equal("err\n"))
	})

	It("appends additional environment variables", func() {
		err := run(exec.CommandConfig{
			Name: "sh",
			Args: []string{"-c", `echo "$FIRST $SECOND"`},
			Env:  []string{"FIRST=one", "SECOND=two"},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(Equal("one two\n"))
	})

	It("extracts the exit code of a failed command", func() {
		err := run(exec.CommandConfig{Name: "sh", Args: []string{"-c", "exit 3"}})
		Expect(err).To(HaveOccurred())

		code, err := runner.GetExitStatusFromError(err)
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(3))
	})

	It("refuses to extract an exit code from unrelated errors", func() {
		_, err := runner.GetExitStatusFromError(context.Canceled)
		Expect(err).To(HaveOccurred())

		_, ok := errors.AsInternalError(err)
		Expect(ok).To(BeTrue())
	})

	It("recognizes missing executables", func() {
		err := run(exec.CommandConfig{Name: "projectrun-definitely-not-an-executable"})

		Expect(err).To(HaveOccurred())
		Expect(runner.IsExecutableNotFound(err)).To(BeTrue())
	})

	It("doesn't treat failed commands as missing executables", func() {
		err := run(exec.CommandConfig{Name: "sh", Args: []string{"-c", "exit 1"}})

		Expect(err).To(HaveOccurred())
		Expect(runner.IsExecutableNotFound(err)).To(BeFalse())
	})
})
