package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	client *sheetstore.MemoryClient
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := sheetstore.NewMemoryClient()
	for _, c := range services.SheetCollections() {
		client.Seed(c.Name, c.Headers)
	}
	cfg := &config.Config{
		StoreDriver:             config.StoreDriverMemory,
		JWTSecretKey:            "test-secret",
		JWTExpiryHours:          12,
		CORSAllowOrigin:         "*",
		RateLimitRPS:            1000,
		RateLimitBurst:          1000,
		LoginRateLimitPerMinute: 1000,
	}
	c := container.NewServiceContainer(cfg, sheetstore.NewStore(client), nil)
	return &testAPI{t: t, router: SetupRouter(c), client: client}
}

func (a *testAPI) call(method, path, token string, body interface{}) (int, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (a *testAPI) login(username, password string) string {
	a.t.Helper()
	status, env := a.call(http.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(a.t, http.StatusOK, status, env.Message)
	var result struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &result))
	return result.Token
}

func (a *testAPI) createdID(env envelope) string {
	a.t.Helper()
	var data struct {
		ID string `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(a.t, data.ID)
	return data.ID
}

// bootstrap creates the first admin plus an agent and a viewer and returns their tokens
func (a *testAPI) bootstrap() (admin, agent, viewer string) {
	a.t.Helper()
	status, _ := a.call(http.MethodPost, "/auth/register-first", "", map[string]string{
		"username": "owner", "password": "Secret123",
	})
	require.Equal(a.t, http.StatusCreated, status)
	admin = a.login("owner", "Secret123")

	for _, u := range []struct{ name, role string }{{"clerk", "agent"}, {"auditor", "viewer"}} {
		status, env := a.call(http.MethodPost, "/auth/register", admin, map[string]string{
			"username": u.name, "password": "Secret123", "role": u.role,
		})
		require.Equal(a.t, http.StatusCreated, status, env.Message)
	}
	return admin, a.login("clerk", "Secret123"), a.login("auditor", "Secret123")
}

func TestPublicRoutes(t *testing.T) {
	api := newTestAPI(t)

	status, env := api.call(http.MethodGet, "/test", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "API is working!", env.Message)

	status, env = api.call(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"store_driver":"memory"`)
	assert.Contains(t, string(env.Data), `"redis_enabled":false`)
}

func TestRegisterFirstOnlyOnce(t *testing.T) {
	api := newTestAPI(t)
	api.bootstrap()

	status, env := api.call(http.MethodPost, "/auth/register-first", "", map[string]string{
		"username": "intruder", "password": "Secret123",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, env.Message, "Setup already completed")
}

func TestRegisterFirstIgnoresRequestedRole(t *testing.T) {
	api := newTestAPI(t)

	status, env := api.call(http.MethodPost, "/auth/register-first", "", map[string]string{
		"username": "owner", "password": "Secret123", "role": "superuser",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	assert.Contains(t, string(env.Data), `"Role":"admin"`)

	admin := api.login("owner", "Secret123")
	status, env = api.call(http.MethodPost, "/auth/register", admin, map[string]string{
		"username": "clerk", "password": "Secret123", "role": "superuser",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	assert.Contains(t, string(env.Data), `"Role":"agent"`)
}

func TestLoginErrors(t *testing.T) {
	api := newTestAPI(t)
	api.bootstrap()

	status, env := api.call(http.MethodPost, "/auth/login", "", map[string]string{"username": "owner"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please provide username and password", env.Message)

	status, wrong := api.call(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "owner", "password": "Nope12345",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	_, unknown := api.call(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "ghost", "password": "Nope12345",
	})
	assert.Equal(t, wrong, unknown)
}

func TestRoleGates(t *testing.T) {
	api := newTestAPI(t)
	admin, agent, viewer := api.bootstrap()

	status, _ := api.call(http.MethodGet, "/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = api.call(http.MethodGet, "/customers", viewer, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env := api.call(http.MethodPost, "/customers", viewer, map[string]string{"name": "Ann"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Insufficient permissions: requires agent role", env.Message)

	status, env = api.call(http.MethodPost, "/customers", agent, map[string]string{"name": "Ann"})
	require.Equal(t, http.StatusCreated, status)
	id := api.createdID(env)

	status, _ = api.call(http.MethodDelete, "/customers/"+id, agent, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = api.call(http.MethodGet, "/auth/users", agent, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = api.call(http.MethodDelete, "/customers/"+id, admin, nil)
	assert.Equal(t, http.StatusOK, status)
	status, env = api.call(http.MethodGet, "/customers/"+id, viewer, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Customer not found", env.Message)
}

func TestUserManagement(t *testing.T) {
	api := newTestAPI(t)
	admin, agent, _ := api.bootstrap()

	status, env := api.call(http.MethodGet, "/auth/me", agent, nil)
	require.Equal(t, http.StatusOK, status)
	var me struct {
		ID   string `json:"ID"`
		Role string `json:"Role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "agent", me.Role)
	assert.NotContains(t, string(env.Data), "Password")

	// an agent may edit itself but not escalate
	status, env = api.call(http.MethodPut, "/auth/users/"+me.ID, agent, map[string]string{
		"fullName": "Clerk One", "role": "admin",
	})
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Contains(t, string(env.Data), `"Role":"agent"`)
	assert.Contains(t, string(env.Data), `"FullName":"Clerk One"`)

	status, env = api.call(http.MethodPut, "/auth/users/someone-else", agent, map[string]string{"fullName": "x"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You can only update your own profile", env.Message)

	status, env = api.call(http.MethodPost, "/auth/register", admin, map[string]string{
		"username": "manager", "password": "Secret123", "role": "manager",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	assert.Contains(t, string(env.Data), `"Role":"agent"`)

	status, env = api.call(http.MethodPut, "/auth/users/"+me.ID, admin, map[string]string{"role": "root"})
	assert.Equal(t, http.StatusBadRequest, status, env.Message)

	status, env = api.call(http.MethodPost, "/auth/register", admin, map[string]string{
		"username": "clerk", "password": "Secret123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Username already exists", env.Message)

	status, env = api.call(http.MethodGet, "/auth/me", admin, nil)
	require.Equal(t, http.StatusOK, status)
	var self struct {
		ID string `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &self))
	status, env = api.call(http.MethodDelete, "/auth/users/"+self.ID, admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "You cannot delete your own account", env.Message)

	status, _ = api.call(http.MethodDelete, "/auth/users/"+me.ID, admin, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestOrderFlow(t *testing.T) {
	api := newTestAPI(t)
	admin, agent, viewer := api.bootstrap()

	_, env := api.call(http.MethodPost, "/customers", agent, map[string]string{
		"name": "Ann Lee", "phone": "0901", "address": "12 Market St",
	})
	customerID := api.createdID(env)
	_, env = api.call(http.MethodPost, "/products", agent, map[string]interface{}{
		"name": "Tea", "price": 10,
	})
	productID := api.createdID(env)

	status, env := api.call(http.MethodPost, "/orders", agent, map[string]interface{}{
		"customer_id":  customerID,
		"total_amount": 20,
		"items":        []map[string]interface{}{{"product_id": productID, "quantity": 2, "price": 10}},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	orderID := api.createdID(env)

	status, env = api.call(http.MethodPost, "/orders/"+orderID+"/items", agent, map[string]interface{}{
		"product_id": "missing",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = api.call(http.MethodGet, "/orders/"+orderID, viewer, nil)
	require.Equal(t, http.StatusOK, status)
	var detail struct {
		Status        string `json:"Status"`
		TotalAmount   string `json:"TotalAmount"`
		CustomerName  string `json:"customer_name"`
		PaymentStatus string `json:"PaymentStatus"`
		Items         []struct {
			Quantity    string `json:"Quantity"`
			ProductName string `json:"product_name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "pending", detail.Status)
	assert.Equal(t, "20", detail.TotalAmount)
	assert.Equal(t, "Ann Lee", detail.CustomerName)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Tea", detail.Items[0].ProductName)
	assert.Equal(t, "2", detail.Items[0].Quantity)
	assert.Equal(t, "Unknown Product", detail.Items[1].ProductName)

	status, _ = api.call(http.MethodPatch, "/orders/"+orderID+"/status", agent, map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusOK, status)
	status, _ = api.call(http.MethodPatch, "/orders/"+orderID+"/status", agent, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = api.call(http.MethodPatch, "/orders/"+orderID+"/payment", agent, map[string]interface{}{
		"amount_collected": 20, "payment_status": "paid",
	})
	assert.Equal(t, http.StatusOK, status)

	status, env = api.call(http.MethodGet, "/orders/reports/weekly", viewer, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"total_sales":20`)
	assert.Contains(t, string(env.Data), `"order_count":1`)

	status, env = api.call(http.MethodPost, "/reminders", agent, map[string]interface{}{"order_id": orderID, "amount": 20})
	require.Equal(t, http.StatusCreated, status, env.Message)
	status, env = api.call(http.MethodGet, "/reminders/pending", viewer, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"customer_name":"Ann Lee"`)

	status, _ = api.call(http.MethodDelete, "/orders/"+orderID, agent, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = api.call(http.MethodDelete, "/orders/"+orderID, admin, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, api.client.Rows("OrderItems"), 1, "only the header row is left")

	status, env = api.call(http.MethodGet, "/orders/"+orderID, viewer, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Order not found", env.Message)
}

func TestMissingBody(t *testing.T) {
	api := newTestAPI(t)
	_, agent, _ := api.bootstrap()

	req := httptest.NewRequest(http.MethodPost, "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer "+agent)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Request body is required")
}
