package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/integration/corewebhook"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/queue"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/usecase"
)

// MockPartnerRepositoryHandler
type MockPartnerRepositoryHandler struct {
	mock.Mock
}

func (m *MockPartnerRepositoryHandler) Create(ctx context.Context, p *entity.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepositoryHandler) Replace(ctx context.Context, p *entity.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepositoryHandler) FindByID(ctx context.Context, id string) (*entity.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Partner), args.Error(1)
}

func (m *MockPartnerRepositoryHandler) FindAll(ctx context.Context) ([]entity.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Partner), args.Error(1)
}

// MockWebhookSenderHandler
type MockWebhookSenderHandler struct {
	mock.Mock
}

func (m *MockWebhookSenderHandler) SendToCore(ctx context.Context, p *entity.Partner) corewebhook.Result {
	args := m.Called(ctx, p)
	return args.Get(0).(corewebhook.Result)
}

// MockSignedProducerHandler
type MockSignedProducerHandler struct {
	mock.Mock
}

func (m *MockSignedProducerHandler) PublishSigned(ctx context.Context, payload queue.SignedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newPartnerRouter(repo *MockPartnerRepositoryHandler, webhook *MockWebhookSenderHandler, producer *MockSignedProducerHandler) *chi.Mux {
	createUC := usecase.NewCreatePartnerUseCase(repo)
	updateUC := usecase.NewUpdatePartnerUseCase(repo, webhook, producer)
	handler := NewPartnerHandler(createUC, updateUC, repo)

	r := chi.NewRouter()
	r.Post("/partners", handler.HandleCreate)
	r.Get("/partners", handler.HandleList)
	r.Get("/partners/{id}", handler.HandleGet)
	r.Put("/partners/{id}", handler.HandleReplace)
	return r
}

func TestCreatePartnerHandlerSuccess(t *testing.T) {
	repo := new(MockPartnerRepositoryHandler)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	router := newPartnerRouter(repo, new(MockWebhookSenderHandler), new(MockSignedProducerHandler))

	input := usecase.CreatePartnerInput{
		Name:              "Acme Outdoors",
		ContactEmail:      "hello@acme.example",
		OpportunityType:   entity.OpportunityEveryday,
		PartnershipType:   entity.PartnershipAffiliate,
		LifestyleCategory: "Outdoors",
	}
	body, _ := json.Marshal(input)

	req := httptest.NewRequest(http.MethodPost, "/partners", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created entity.Partner
	json.NewDecoder(w.Body).Decode(&created)
	assert.NotEmpty(t, created.ID, "missing id gets a generated one")
	assert.Equal(t, entity.StatusPotential, created.Status, "status defaults to potential")
}

func TestCreatePartnerHandlerInvalidJSON(t *testing.T) {
	router := newPartnerRouter(new(MockPartnerRepositoryHandler), new(MockWebhookSenderHandler), new(MockSignedProducerHandler))

	req := httptest.NewRequest(http.MethodPost, "/partners", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env envelope
	json.NewDecoder(w.Body).Decode(&env)
	assert.False(t, env.Success)
}

func TestCreatePartnerHandlerInvalidEnum(t *testing.T) {
	repo := new(MockPartnerRepositoryHandler)
	router := newPartnerRouter(repo, new(MockWebhookSenderHandler), new(MockSignedProducerHandler))

	body := []byte(`{"name":"Acme","status":"archived"}`)
	req := httptest.NewRequest(http.MethodPost, "/partners", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var env envelope
	json.NewDecoder(w.Body).Decode(&env)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "status")
	assert.Contains(t, env.Error, "archived")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReplacePartnerHandlerNormalizesLegacyShape(t *testing.T) {
	repo := new(MockPartnerRepositoryHandler)
	webhook := new(MockWebhookSenderHandler)
	producer := new(MockSignedProducerHandler)

	created := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	current := &entity.Partner{
		ID:        "partner-9",
		Name:      "Trailhead Coffee",
		Status:    entity.StatusPotential,
		CreatedAt: created,
		UpdatedAt: created,
	}

	repo.On("FindByID", mock.Anything, "partner-9").Return(current, nil)
	repo.On("Replace", mock.Anything, mock.MatchedBy(func(p *entity.Partner) bool {
		return p.ContactPhone == "555-1234" && p.Name == "Trailhead Coffee"
	})).Return(nil)
	webhook.On("SendToCore", mock.Anything, mock.Anything).Return(corewebhook.Result{Success: true})

	router := newPartnerRouter(repo, webhook, producer)

	legacyBody := []byte(`{
		"company": "Trailhead Coffee",
		"contact_number": "555-1234",
		"status": "contacted",
		"category": "Coffee"
	}`)

	req := httptest.NewRequest(http.MethodPut, "/partners/partner-9", bytes.NewReader(legacyBody))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var output usecase.UpdatePartnerOutput
	json.NewDecoder(w.Body).Decode(&output)
	assert.True(t, output.Delivery.Success)
	assert.Equal(t, "555-1234", output.Partner.ContactPhone)
	assert.Equal(t, "Coffee", output.Partner.LifestyleCategory)
	repo.AssertExpectations(t)
}

func TestReplacePartnerHandlerSurfacesDeliveryFailure(t *testing.T) {
	repo := new(MockPartnerRepositoryHandler)
	webhook := new(MockWebhookSenderHandler)

	current := &entity.Partner{
		ID:        "partner-9",
		Name:      "Trailhead Coffee",
		Status:    entity.StatusPotential,
		CreatedAt: time.Now(),
	}
	repo.On("FindByID", mock.Anything, "partner-9").Return(current, nil)
	repo.On("Replace", mock.Anything, mock.Anything).Return(nil)
	webhook.On("SendToCore", mock.Anything, mock.Anything).
		Return(corewebhook.Result{Success: false, Error: "Webhook URL not configured"})

	router := newPartnerRouter(repo, webhook, new(MockSignedProducerHandler))

	body := []byte(`{"name":"Trailhead Coffee","status":"lead"}`)
	req := httptest.NewRequest(http.MethodPut, "/partners/partner-9", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Mutation succeeded even though delivery failed.
	assert.Equal(t, http.StatusOK, w.Code)
	var output usecase.UpdatePartnerOutput
	json.NewDecoder(w.Body).Decode(&output)
	assert.False(t, output.Delivery.Success)
	assert.Equal(t, "Webhook URL not configured", output.Delivery.Error)
}

func TestReplacePartnerHandlerNotFound(t *testing.T) {
	repo := new(MockPartnerRepositoryHandler)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, errors.New("sql: no rows in result set"))

	router := newPartnerRouter(repo, new(MockWebhookSenderHandler), new(MockSignedProducerHandler))

	req := httptest.NewRequest(http.MethodPut, "/partners/missing", bytes.NewReader([]byte(`{"name":"X","status":"lead"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPartnerHandlerNotFound(t *testing.T) {
	repo := new(MockPartnerRepositoryHandler)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, errors.New("sql: no rows in result set"))

	router := newPartnerRouter(repo, new(MockWebhookSenderHandler), new(MockSignedProducerHandler))

	req := httptest.NewRequest(http.MethodGet, "/partners/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPartnersHandlerEmpty(t *testing.T) {
	repo := new(MockPartnerRepositoryHandler)
	repo.On("FindAll", mock.Anything).Return([]entity.Partner{}, nil)

	router := newPartnerRouter(repo, new(MockWebhookSenderHandler), new(MockSignedProducerHandler))

	req := httptest.NewRequest(http.MethodGet, "/partners", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
