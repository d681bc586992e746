package department_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/frahmantamala/employee-directory/internal"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-directory/internal/department"
	departmentPostgres "github.com/frahmantamala/employee-directory/internal/department/postgres"
	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		router *chi.Mux
		gate   *stubGate
	)

	type envelope struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}

	serve := func(req *http.Request) (*httptest.ResponseRecorder, envelope) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var env envelope
		Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
		return w, env
	}

	post := func(path, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&departmentDatamodel.Department{})).To(Succeed())

		gate = &stubGate{}
		employees := &mockEmployeeLister{byDepartment: map[int64][]*employeeDatamodel.Employee{}}
		service := department.NewService(departmentPostgres.NewDepartmentRepository(db), employees, gate, nil, slogger)
		handler := department.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Get("/get/all", handler.GetAllDepartments)
		router.Get("/get/{id}", handler.GetDepartment)
		router.Post("/create", handler.CreateDepartment)
		router.Put("/update/{id}", handler.UpdateDepartment)
		router.Delete("/delete/{id}", handler.DeleteDepartment)
		router.Get("/roster", handler.ViewEmployeesInDepartment)
	})

	It("creates with 201 and reads back with 200", func() {
		w, env := serve(post("/create", `{"name":"HR","description":"Human Resources"}`))
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(env.Code).To(Equal("00"))

		var created department.Department
		Expect(json.Unmarshal(env.Data, &created)).To(Succeed())

		w, env = serve(httptest.NewRequest(http.MethodGet, "/get/1", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(env.Message).To(Equal("Success"))
		Expect(string(env.Data)).To(ContainSubstring(`"name":"HR"`))
		Expect(created.ID).To(Equal(int64(1)))
	})

	It("answers a duplicate name with 400 and code 99", func() {
		serve(post("/create", `{"name":"HR"}`))

		w, env := serve(post("/create", `{"name":"HR"}`))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(env.Code).To(Equal("99"))
		Expect(env.Message).To(Equal("Unable to create department, department details has been used"))
	})

	It("maps code 90 to 404", func() {
		w, env := serve(httptest.NewRequest(http.MethodGet, "/get/77", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(env.Code).To(Equal("90"))
		Expect(string(env.Data)).To(Or(BeEmpty(), Equal("null")))
	})

	DescribeTable("rejects malformed ids before reaching the service",
		func(id string) {
			w, env := serve(httptest.NewRequest(http.MethodDelete, "/delete/"+id, nil))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(env.Code).To(Equal("99"))
			Expect(env.Message).To(Equal(transport.MessageInvalidID))
		},
		Entry("letters", "abc"),
		Entry("zero", "0"),
		Entry("negative", "-4"),
	)

	It("returns the field map for a blank name", func() {
		w, env := serve(post("/create", `{"name":"  "}`))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(env.Code).To(Equal("90"))
		Expect(env.Message).To(Equal("Validation Failed"))

		var fields map[string]string
		Expect(json.Unmarshal(env.Data, &fields)).To(Succeed())
		Expect(fields).To(HaveKey("name"))
	})

	It("rejects a body that is not JSON", func() {
		w, env := serve(post("/create", `{"name":`))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(env.Message).To(Equal(transport.MessageInvalidBody))
	})

	It("updates only the supplied fields", func() {
		serve(post("/create", `{"name":"HR","description":"People"}`))

		req := httptest.NewRequest(http.MethodPut, "/update/1", bytes.NewBufferString(`{"description":"People Ops"}`))
		w, env := serve(req)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(string(env.Data)).To(ContainSubstring(`"name":"HR"`))
		Expect(string(env.Data)).To(ContainSubstring(`"description":"People Ops"`))
	})

	It("requires an authenticated caller for the roster", func() {
		w, _ := serve(httptest.NewRequest(http.MethodGet, "/roster", nil))
		Expect(w.Code).To(Equal(http.StatusUnauthorized))

		gate.department = &departmentDatamodel.Department{ID: 1, Name: "HR"}
		req := httptest.NewRequest(http.MethodGet, "/roster", nil)
		req = req.WithContext(internal.ContextWithCaller(req.Context(), "manager@example.com"))
		w, env := serve(req)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(string(env.Data)).To(Equal("[]"))
	})
})
