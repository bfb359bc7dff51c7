package fs_test

import (
	"os"
	"path/filepath"

	"github.com/aggdata/projectrun/internal/errors"
	"github.com/aggdata/projectrun/internal/fs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("fs.Local", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "projectrun-fs")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		for _, name := range []string{"b.sh", "a.sh", "nested/c.sh", "notes.txt"} {
			path := filepath.Join(dir, name)
			Expect(os.MkdirAll(filepath.Dir(path), 0o750)).To(Succeed())
			Expect(os.WriteFile(path, []byte("echo hi\n"), 0o600)).To(Succeed())
		}
	})

	Describe("Glob", func() {
		It("expands a flat pattern in lexical order", func() {
			matches, err := fs.Local{}.Glob(filepath.Join(dir, "*.sh"))

			Expect(err).NotTo(HaveOccurred())
			Expect(matches).To(Equal([]string{
				filepath.Join(dir, "a.sh"),
				filepath.Join(dir, "b.sh"),
			}))
		})

		It("expands recursive patterns", func() {
			matches, err := fs.Local{}.Glob(filepath.Join(dir, "**", "*.sh"))

			Expect(err).NotTo(HaveOccurred())
			Expect(matches).To(ContainElement(filepath.Join(dir, "nested", "c.sh")))
			Expect(matches).To(ContainElement(filepath.Join(dir, "a.sh")))
			Expect(matches).NotTo(ContainElement(filepath.Join(dir, "notes.txt")))
		})
	})

	Describe("Stat", func() {
		It("returns information about existing files", func() {
			info, err := fs.Local{}.Stat(filepath.Join(dir, "a.sh"))

			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeFalse())
		})

		It("keeps os.ErrNotExist inspectable", func() {
			_, err := fs.Local{}.Stat(filepath.Join(dir, "missing.sh"))

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})
})

var _ = Describe("fs.IsLocal", func() {
	DescribeTable("classifies paths",
		func(path string, expected bool) {
			Expect(fs.IsLocal(path)).To(Equal(expected))
		},
		Entry("plain name", "build_daily", true),
		Entry("nested name", "nightly/build_daily", true),
		Entry("inner dots that stay inside", "nightly/../build_daily", true),
		Entry("empty path", "", false),
		Entry("absolute path", "/etc/passwd", false),
		Entry("parent directory", "..", false),
		Entry("escaping path", "../../etc/passwd", false),
		Entry("escaping after cleaning", "nightly/../../build_daily", false),
	)
})
