package swagger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/frahmantamala/employee-directory/internal/transport/swagger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSwagger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swagger Suite")
}

var _ = Describe("LoadDocument", func() {
	ctx := context.Background()

	It("loads the shipped API document", func() {
		doc, err := swagger.LoadDocument(ctx, filepath.Join("..", "..", "..", "api", "openapi.yml"))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Title()).To(Equal("Employee Directory API"))
		Expect(doc.PathCount()).To(BeNumerically(">=", 19))
	})

	It("serves the raw document", func() {
		path := filepath.Join(GinkgoT().TempDir(), "openapi.yml")
		body := "openapi: 3.0.3\ninfo:\n  title: Tiny\n  version: '1'\npaths: {}\n"
		Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())

		doc, err := swagger.LoadDocument(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.PathCount()).To(BeZero())

		w := httptest.NewRecorder()
		doc.ServeHTTP(w, httptest.NewRequest(http.MethodGet, swagger.SpecURL, nil))
		Expect(w.Header().Get("Content-Type")).To(Equal("application/yaml"))
		Expect(w.Body.String()).To(Equal(body))
	})

	It("rejects a document that does not validate", func() {
		path := filepath.Join(GinkgoT().TempDir(), "openapi.yml")
		Expect(os.WriteFile(path, []byte("openapi: 3.0.3\npaths: {}\n"), 0o600)).To(Succeed())

		_, err := swagger.LoadDocument(ctx, path)
		Expect(err).To(MatchError(ContainSubstring("validate openapi document")))
	})

	It("reports a missing file", func() {
		_, err := swagger.LoadDocument(ctx, filepath.Join(GinkgoT().TempDir(), "absent.yml"))
		Expect(err).To(MatchError(ContainSubstring("read openapi document")))
	})
})
