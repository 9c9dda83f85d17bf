package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/devcamper/internal/app/controllers"
	"github.com/yigit/devcamper/internal/app/routes"
	"github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/app/services/servicestest"
	"github.com/yigit/devcamper/internal/bootstrap"
	"github.com/yigit/devcamper/internal/pkg/geocoder"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type fixture struct {
	store  *servicestest.Store
	geo    *servicestest.Geocoder
	ping   *pinger
	router *gin.Engine
}

func newFixture() *fixture {
	f := &fixture{
		store: servicestest.NewStore(),
		geo: &servicestest.Geocoder{Locations: map[string]geocoder.Location{
			"233 Bay State Rd Boston MA 02215": {
				Latitude: 42.350846, Longitude: -71.104028,
				Street: "233 Bay State Rd", City: "Boston", State: "MA", Zipcode: "02215", CountryCode: "US",
			},
			"02118": {Latitude: 42.3388, Longitude: -71.0726, Zipcode: "02118"},
		}},
		ping: &pinger{},
	}

	svcs := services.NewServices(f.store.Bootcamps(), f.store.Courses(), f.store, f.geo)
	f.router = bootstrap.NewEngine(nil)
	routes.SetupRouter(f.router,
		controllers.NewBootcampController(svcs.BootcampService),
		controllers.NewCourseController(svcs.CourseService),
		controllers.NewHealthController(f.ping),
	)
	return f
}

type envelope struct {
	Success    bool            `json:"success"`
	Count      *int            `json:"count"`
	Pagination json.RawMessage `json:"pagination"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func (f *fixture) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestListBootcampsEnvelope(t *testing.T) {
	f := newFixture()
	devworks := f.store.AddBootcamp("Devworks", 42.35, -71.10)
	f.store.AddBootcamp("ModernTech", 42.64, -71.32)
	f.store.AddBootcamp("Codemasters", 44.48, -73.21)
	f.store.AddCourse(devworks, "Front End")

	status, env := f.do(t, http.MethodGet, "/api/v1/bootcamps?limit=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
	assert.JSONEq(t, `{"next":{"page":2,"limit":2}}`, string(env.Pagination))

	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 2)
	assert.Equal(t, "Devworks", data[0]["name"])
	assert.Len(t, data[0]["courses"], 1)
	assert.Equal(t, []interface{}{}, data[1]["courses"])
}

func TestListBootcampsSelect(t *testing.T) {
	f := newFixture()
	b := f.store.AddBootcamp("Devworks", 42.35, -71.10)

	status, env := f.do(t, http.MethodGet, "/api/v1/bootcamps?select=name", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":"`+b.ID.String()+`","name":"Devworks"}]`, string(env.Data))
	assert.JSONEq(t, `{}`, string(env.Pagination))
}

func TestListBootcampsBadParameter(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodGet, "/api/v1/bootcamps?averageCost[gte]=cheap", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "averageCost[gte]")
}

func TestMalformedIDIsNotFound(t *testing.T) {
	f := newFixture()

	for _, path := range []string{"/api/v1/bootcamps/abc", "/api/v1/courses/abc", "/api/v1/bootcamps/abc/courses"} {
		status, env := f.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Equal(t, "Resource with id: abc not found", env.Error, path)
	}
}

func TestGetBootcampNotFound(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodGet, "/api/v1/bootcamps/5d713995-b721-4c3b-b38c-1f5d0d3e1a01", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bootcamp not found with id: 5d713995-b721-4c3b-b38c-1f5d0d3e1a01", env.Error)
}

func TestCreateBootcamp(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodPost, "/api/v1/bootcamps", `{
		"name": "Devworks Bootcamp",
		"description": "Full stack JavaScript",
		"address": "233 Bay State Rd Boston MA 02215",
		"careers": ["Web Development", "UI/UX"],
		"housing": true
	}`)
	require.Equal(t, http.StatusCreated, status)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "devworks-bootcamp", data["slug"])
	assert.Equal(t, "no-photo.jpg", data["photo"])
	assert.Equal(t, true, data["housing"])
	location := data["location"].(map[string]interface{})
	assert.Equal(t, "Point", location["type"])
	assert.Equal(t, []interface{}{-71.104028, 42.350846}, location["coordinates"])
	assert.Len(t, f.store.BootcampRows, 1)
}

func TestCreateBootcampReportsEveryViolation(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodPost, "/api/v1/bootcamps", `{"careers": ["Cooking"], "email": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	for _, msg := range []string{
		"Please add a name",
		"Please add a description",
		"Please add a valid email",
		"Please add an address",
		"Career must be one of",
	} {
		assert.Contains(t, env.Error, msg)
	}
	assert.Empty(t, f.store.BootcampRows)
}

func TestCreateBootcampEmptyBody(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodPost, "/api/v1/bootcamps", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Request body is required", env.Error)
}

func TestCreateBootcampUnknownAddress(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodPost, "/api/v1/bootcamps", `{
		"name": "Nowhere", "description": "x", "address": "nowhere", "careers": ["Other"]
	}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Could not find a location for address: nowhere", env.Error)
}

func TestUpdateBootcamp(t *testing.T) {
	f := newFixture()
	b := f.store.AddBootcamp("Devworks", 42.35, -71.10)

	status, env := f.do(t, http.MethodPut, "/api/v1/bootcamps/"+b.ID.String(), `{"housing": true}`)
	require.Equal(t, http.StatusOK, status)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, true, data["housing"])
	assert.Equal(t, "Devworks", data["name"])
}

func TestDeleteBootcampRemovesCourses(t *testing.T) {
	f := newFixture()
	b := f.store.AddBootcamp("Devworks", 42.35, -71.10)
	f.store.AddCourse(b, "Front End")
	f.store.AddCourse(b, "Back End")

	status, env := f.do(t, http.MethodDelete, "/api/v1/bootcamps/"+b.ID.String(), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), b.ID.String())
	assert.Empty(t, f.store.BootcampRows)
	assert.Empty(t, f.store.CourseRows)
}

func TestBootcampsInRadius(t *testing.T) {
	f := newFixture()
	f.store.AddBootcamp("Devworks", 42.350846, -71.104028)
	f.store.AddBootcamp("Codemasters", 44.484456, -73.213883)

	status, env := f.do(t, http.MethodGet, "/api/v1/bootcamps/radius/02118/10", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
	assert.Contains(t, string(env.Data), "Devworks")

	status, env = f.do(t, http.MethodGet, "/api/v1/bootcamps/radius/02118/far", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Distance must be a non-negative number", env.Error)

	status, env = f.do(t, http.MethodGet, "/api/v1/bootcamps/radius/99999/10", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No location found for zipcode: 99999", env.Error)
}

func TestCourseLifecycle(t *testing.T) {
	f := newFixture()
	b := f.store.AddBootcamp("Devworks", 42.35, -71.10)

	status, env := f.do(t, http.MethodPost, "/api/v1/bootcamps/"+b.ID.String()+"/courses", `{
		"title": "Front End Web Development",
		"description": "HTML, CSS and JavaScript",
		"weeks": 8,
		"tuition": 8000,
		"minimumSkill": "beginner"
	}`)
	require.Equal(t, http.StatusCreated, status)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, b.ID.String(), created["bootcamp"])
	id := created["id"].(string)

	status, env = f.do(t, http.MethodGet, "/api/v1/bootcamps/"+b.ID.String()+"/courses", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, *env.Count)

	status, env = f.do(t, http.MethodPut, "/api/v1/courses/"+id, `{"weeks": 10}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"weeks":10`)

	status, _ = f.do(t, http.MethodDelete, "/api/v1/courses/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, f.store.CourseRows)

	status, _ = f.do(t, http.MethodGet, "/api/v1/courses/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateCourseUnderMissingBootcamp(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodPost, "/api/v1/bootcamps/5d713995-b721-4c3b-b38c-1f5d0d3e1a01/courses", `{
		"title": "Orphan", "description": "x", "weeks": 4, "tuition": 0, "minimumSkill": "advanced"
	}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bootcamp not found with id: 5d713995-b721-4c3b-b38c-1f5d0d3e1a01", env.Error)
	assert.Empty(t, f.store.CourseRows)
}

func TestUpdateCourseValidation(t *testing.T) {
	f := newFixture()
	b := f.store.AddBootcamp("Devworks", 42.35, -71.10)
	c := f.store.AddCourse(b, "Front End")

	status, env := f.do(t, http.MethodPut, "/api/v1/courses/"+c.ID.String(), `{"weeks": 0, "minimumSkill": "expert"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please add number of weeks, Minimum skill must be one of beginner, intermediate, advanced", env.Error)
}

func TestListBootcampCoursesOfUnknownBootcamp(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodGet, "/api/v1/bootcamps/5d713995-b721-4c3b-b38c-1f5d0d3e1a01/courses", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, *env.Count)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestListCourses(t *testing.T) {
	f := newFixture()
	b := f.store.AddBootcamp("Devworks", 42.35, -71.10)
	f.store.AddCourse(b, "Front End")
	f.store.AddCourse(b, "Back End")

	status, env := f.do(t, http.MethodGet, "/api/v1/courses?page=2&select=title", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, *env.Count)
	assert.JSONEq(t, `{"prev":{"page":1,"limit":1}}`, string(env.Pagination))
	assert.Contains(t, string(env.Data), "Back End")
	assert.NotContains(t, string(env.Data), "weeks")
}

func TestListAllCourses(t *testing.T) {
	f := newFixture()
	b := f.store.AddBootcamp("Devworks", 42.35, -71.10)
	for _, title := range []string{"Front End", "Back End", "Full Stack"} {
		f.store.AddCourse(b, title)
	}

	status, env := f.do(t, http.MethodGet, "/api/v1/courses", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, *env.Count)
	assert.Empty(t, env.Pagination)

	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 3)
}

func TestListBootcampsLimitCapped(t *testing.T) {
	f := newFixture()
	f.store.AddBootcamp("Devworks", 42.35, -71.10)

	status, env := f.do(t, http.MethodGet, "/api/v1/bootcamps?limit=100000&page=99999999999999999999", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, *env.Count)
	assert.JSONEq(t, `{"prev":{"page":2147483646,"limit":100}}`, string(env.Pagination))
}

func TestHealth(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, string(env.Data))

	f.ping.err = errors.New("connection refused")
	status, env = f.do(t, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.False(t, env.Success)
	assert.JSONEq(t, `{"status":"degraded","database":"down"}`, string(env.Data))
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture()

	status, env := f.do(t, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route GET /api/v1/nope not found", env.Error)
}
