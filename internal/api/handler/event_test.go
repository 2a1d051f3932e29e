package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdash/internal/domain"
)

type mockEventService struct {
	createCalls int
	createReq   domain.CreateEventOrchestration
	updateCalls int
	updateReq   domain.UpdateEventOrchestration
}

func (m *mockEventService) CreateEvent(ctx context.Context, p domain.Principal, req domain.CreateEventOrchestration) (domain.EventDetails, error) {
	m.createCalls++
	m.createReq = req
	return domain.EventDetails{Event: domain.Event{ID: "event-1"}}, nil
}

func (m *mockEventService) UpdateEvent(ctx context.Context, p domain.Principal, eventID string, req domain.UpdateEventOrchestration) (domain.UpdateEventOrchestrationResponse, error) {
	m.updateCalls++
	m.updateReq = req
	return domain.UpdateEventOrchestrationResponse{Success: true}, nil
}

func (m *mockEventService) GetEventDetails(ctx context.Context, p domain.Principal, eventID string) (domain.EventDetails, error) {
	return domain.EventDetails{Event: domain.Event{ID: eventID, Title: "Launch Party"}}, nil
}

func (m *mockEventService) ListEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error) {
	return nil, nil
}

func (m *mockEventService) ListMyEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error) {
	return nil, nil
}

func (m *mockEventService) DeleteEvent(ctx context.Context, p domain.Principal, eventID string) error {
	return nil
}

type mockVenueLister struct{}

func (mockVenueLister) ListVenues(ctx context.Context, p domain.Principal) ([]domain.Venue, error) {
	return nil, nil
}

type mockOrganizationLister struct{}

func (mockOrganizationLister) ListOrganizations(ctx context.Context, p domain.Principal) ([]domain.Organization, error) {
	return nil, nil
}

type mockAttendeeLister struct{}

func (mockAttendeeLister) ListEventAttendees(ctx context.Context, p domain.Principal, eventID string) ([]domain.EventAttendee, error) {
	return nil, nil
}

func newEventTestRouter(t *testing.T, svc *mockEventService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.tmpl")
	r.Use(func(ctx *gin.Context) {
		ctx.Set("principal", domain.Principal{UserID: "user-1", Token: "tok"})
	})

	h := NewEventHandler(svc, mockVenueLister{}, mockOrganizationLister{}, mockAttendeeLister{})
	r.POST("/dashboard/event-new", h.HandleCreateEvent)
	r.POST("/dashboard/event-edit/:eventID", h.HandleUpdateEvent)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleCreateEvent_InvalidDateNeverReachesService(t *testing.T) {
	svc := &mockEventService{}
	r := newEventTestRouter(t, svc)

	w := postForm(r, "/dashboard/event-new", url.Values{
		"title":                 {"Launch Party"},
		"description":           {"Annual launch"},
		"eventDate":             {"next tuesday"},
		"registrationOpenDate":  {"2026-09-01T09:00"},
		"registrationCloseDate": {"2026-09-19T17:00"},
		"venueId":               {"venue-1"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format")
	assert.Zero(t, svc.createCalls)
}

func TestHandleCreateEvent_BuildsRequestFromForm(t *testing.T) {
	svc := &mockEventService{}
	r := newEventTestRouter(t, svc)

	w := postForm(r, "/dashboard/event-new", url.Values{
		"title":                 {"Launch Party"},
		"description":           {"Annual launch"},
		"eventDate":             {"2026-09-20T18:00"},
		"registrationOpenDate":  {"2026-09-01T09:00"},
		"registrationCloseDate": {"2026-09-19T17:00"},
		"venueId":               {"venue-1"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/event/event-1", w.Header().Get("Location"))
	require.Equal(t, 1, svc.createCalls)
	assert.Equal(t, "user-1", svc.createReq.OrganizerID)
	assert.Equal(t, "venue-1", svc.createReq.VenueID)
}

func TestHandleUpdateEvent_InvalidDateNeverReachesService(t *testing.T) {
	svc := &mockEventService{}
	r := newEventTestRouter(t, svc)

	w := postForm(r, "/dashboard/event-edit/event-9", url.Values{
		"eventDate": {"soon"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.updateCalls)
}
