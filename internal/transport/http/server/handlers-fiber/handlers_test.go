package handlers_fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contact-directory/internal/entities"
	api "contact-directory/internal/oapi"
	"contact-directory/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var _ api.ServerInterface = (*Handler)(nil)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) ListContacts(ctx context.Context) ([]entities.ContactView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ContactView), args.Error(1)
}

func (m *usecaseMock) Contact(ctx context.Context, id string) (*entities.ContactView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContactView), args.Error(1)
}

func (m *usecaseMock) CreateContact(ctx context.Context, name, phone string, teamIDs []string) (*entities.ContactView, error) {
	args := m.Called(ctx, name, phone, teamIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContactView), args.Error(1)
}

func (m *usecaseMock) UpdateContact(ctx context.Context, id string, update entities.ContactUpdate) (*entities.ContactView, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContactView), args.Error(1)
}

func (m *usecaseMock) DeleteContact(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *usecaseMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *usecaseMock) Team(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) DeleteTeam(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestApp(uc *usecaseMock) *fiber.App {
	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

var ana = entities.ContactView{
	Contact: entities.Contact{
		ID:       "c1",
		Name:     "Ana",
		Phone:    "+15551234567",
		Timezone: "America/New_York",
		TeamIDs:  []string{"t1"},
	},
	Time:  "2026-10-15 08:00:00",
	Teams: []entities.Team{{ID: "t1", Name: "Ops"}},
}

func TestPostContacts(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("CreateContact", mock.Anything, "Ana", "+15551234567", []string{"t1"}).Return(&ana, nil)
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodPost, "/contacts", `{"name":"Ana","phone":"+15551234567","teams":["t1"]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t, `{"contact":{
		"id":"c1",
		"name":"Ana",
		"phone":"+15551234567",
		"timezone":"America/New_York",
		"time":"2026-10-15 08:00:00",
		"teams":[{"id":"t1","name":"Ops"}]
	}}`, string(raw))
	uc.AssertExpectations(t)
}

func TestPostContactsConflict(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("CreateContact", mock.Anything, "Bob", "+15551234567", []string(nil)).Return(nil, entities.ErrContactExists)
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodPost, "/contacts", `{"name":"Bob","phone":"+15551234567"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, api.CONTACTEXISTS, body.Error.Code)
	require.Equal(t, "Contact Exists", body.Error.Message)
}

func TestPostContactsInvalidBody(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodPost, "/contacts", `{"name":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, api.VALIDATIONERROR, body.Error.Code)
	require.Equal(t, "invalid body", body.Error.Message)
	uc.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetContacts(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("ListContacts", mock.Anything).Return([]entities.ContactView{ana}, nil)
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodGet, "/contacts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ContactList
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Contacts, 1)
	require.Equal(t, "2026-10-15 08:00:00", body.Contacts[0].Time)
}

func TestGetContactsEmptyIsArray(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("ListContacts", mock.Anything).Return([]entities.ContactView{}, nil)
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodGet, "/contacts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"contacts":[]}`, string(raw))
}

func TestGetContactsIdErrors(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("Contact", mock.Anything, "missing").Return(nil, entities.ErrContactNotFound)
	uc.On("Contact", mock.Anything, "zzz").Return(nil, entities.ErrInvalidID)
	app := newTestApp(uc)

	resp, _ := doJSON(t, app, http.MethodGet, "/contacts/missing", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/contacts/zzz", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPatchContactsId(t *testing.T) {
	uc := &usecaseMock{}
	name := "Ana Maria"
	updated := ana
	updated.Name = name
	uc.On("UpdateContact", mock.Anything, "c1", entities.ContactUpdate{Name: &name}).Return(&updated, nil)
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodPatch, "/contacts/c1", `{"name":"Ana Maria"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ContactEnvelope
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, name, body.Contact.Name)
	require.Equal(t, "America/New_York", body.Contact.Timezone)
}

func TestPatchContactsIdNothingToUpdate(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("UpdateContact", mock.Anything, "c1", entities.ContactUpdate{}).
		Return(nil, entities.ErrValidation)
	app := newTestApp(uc)

	resp, _ := doJSON(t, app, http.MethodPatch, "/contacts/c1", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteContactsId(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("DeleteContact", mock.Anything, "c1").Return(true, nil)
	uc.On("DeleteContact", mock.Anything, "c2").Return(false, nil)
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodDelete, "/contacts/c1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"deleted":true}`, string(raw))

	resp, raw = doJSON(t, app, http.MethodDelete, "/contacts/c2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"deleted":false}`, string(raw))
}

func TestTeamRoutes(t *testing.T) {
	uc := &usecaseMock{}
	ops := &entities.Team{ID: "t1", Name: "Ops"}
	uc.On("CreateTeam", mock.Anything, "Ops").Return(ops, nil)
	uc.On("Team", mock.Anything, "t1").Return(ops, nil)
	uc.On("ListTeams", mock.Anything).Return([]entities.Team{*ops}, nil)
	uc.On("DeleteTeam", mock.Anything, "t1").Return(true, nil)
	app := newTestApp(uc)

	resp, raw := doJSON(t, app, http.MethodPost, "/teams", `{"name":"Ops"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t, `{"team":{"id":"t1","name":"Ops"}}`, string(raw))

	resp, raw = doJSON(t, app, http.MethodGet, "/teams/t1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"team":{"id":"t1","name":"Ops"}}`, string(raw))

	resp, raw = doJSON(t, app, http.MethodGet, "/teams", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"teams":[{"id":"t1","name":"Ops"}]}`, string(raw))

	resp, raw = doJSON(t, app, http.MethodDelete, "/teams/t1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"deleted":true}`, string(raw))

	uc.AssertExpectations(t)
}

func TestPostTeamsValidation(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("CreateTeam", mock.Anything, "").Return(nil, entities.ErrValidation)
	app := newTestApp(uc)

	resp, _ := doJSON(t, app, http.MethodPost, "/teams", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
