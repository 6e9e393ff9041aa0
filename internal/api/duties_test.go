package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"office-experiment/dutyboard/internal/constants"
	"office-experiment/dutyboard/internal/db/repositories"
	"office-experiment/dutyboard/internal/models/dtos"
)

// Mock DutyAPI
type mockDutyService struct {
	listFunc       func(ctx context.Context, limit int) ([]dtos.DutyResponse, error)
	completeFunc   func(ctx context.Context, id int, dutyType constants.DutyType) error
	uncompleteFunc func(ctx context.Context, id int, dutyType constants.DutyType) error
	recentFunc     func(ctx context.Context, dutyType constants.DutyType) (*dtos.DutyResponse, string, error)
}

func (m *mockDutyService) ListDuties(ctx context.Context, limit int) ([]dtos.DutyResponse, error) {
	return m.listFunc(ctx, limit)
}

func (m *mockDutyService) MarkCompleted(ctx context.Context, id int, dutyType constants.DutyType) error {
	return m.completeFunc(ctx, id, dutyType)
}

func (m *mockDutyService) MarkUncompleted(ctx context.Context, id int, dutyType constants.DutyType) error {
	return m.uncompleteFunc(ctx, id, dutyType)
}

func (m *mockDutyService) MostRecentDuty(ctx context.Context, dutyType constants.DutyType) (*dtos.DutyResponse, string, error) {
	return m.recentFunc(ctx, dutyType)
}

func sampleDuty() dtos.DutyResponse {
	return dtos.DutyResponse{
		DutyID:             "42",
		DutyType:           constants.DutyCoffee,
		UserID:             "7",
		Username:           "alice",
		Name:               "Alice Smith",
		SelectionTimestamp: "2026-08-30T09:00:00Z",
		CycleID:            3,
	}
}

func TestGetDutiesHandler_Success(t *testing.T) {
	mockService := &mockDutyService{
		listFunc: func(ctx context.Context, limit int) ([]dtos.DutyResponse, error) {
			if limit != 100 {
				t.Errorf("Expected default limit 100, got %d", limit)
			}
			return []dtos.DutyResponse{sampleDuty()}, nil
		},
	}

	handler := GetDutiesHandler(mockService)

	req := httptest.NewRequest("GET", "/api/duties", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.DutyListResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Total != 1 || len(response.Duties) != 1 {
		t.Errorf("Expected 1 duty, got total=%d duties=%d", response.Total, len(response.Duties))
	}
}

func TestGetDutiesHandler_CustomLimit(t *testing.T) {
	mockService := &mockDutyService{
		listFunc: func(ctx context.Context, limit int) ([]dtos.DutyResponse, error) {
			if limit != 5 {
				t.Errorf("Expected limit 5, got %d", limit)
			}
			return nil, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/duties?limit=5", nil)
	rr := httptest.NewRecorder()
	GetDutiesHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

func TestCompleteDutyHandler_Success(t *testing.T) {
	mockService := &mockDutyService{
		completeFunc: func(ctx context.Context, id int, dutyType constants.DutyType) error {
			if id != 42 || dutyType != constants.DutyCoffee {
				t.Errorf("Unexpected toggle args: id=%d type=%s", id, dutyType)
			}
			return nil
		},
		listFunc: func(ctx context.Context, limit int) ([]dtos.DutyResponse, error) {
			if limit != 50 {
				t.Errorf("Expected refreshed list limit 50, got %d", limit)
			}
			return []dtos.DutyResponse{sampleDuty()}, nil
		},
	}

	body, _ := json.Marshal(dtos.DutyCompletionReq{DutyID: "42", DutyType: "coffee"})
	req := httptest.NewRequest("POST", "/api/duties/complete", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	CompleteDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.DutyMutationResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Success {
		t.Error("Expected success true")
	}
	if response.Message != constants.MsgDutyCompleted {
		t.Errorf("Unexpected message %q", response.Message)
	}
	if len(response.Duties) != 1 {
		t.Errorf("Expected refreshed duty list, got %d entries", len(response.Duties))
	}
}

func TestCompleteDutyHandler_InvalidJSON(t *testing.T) {
	mockService := &mockDutyService{}

	req := httptest.NewRequest("POST", "/api/duties/complete", bytes.NewReader([]byte("invalid json")))
	rr := httptest.NewRecorder()
	CompleteDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestCompleteDutyHandler_InvalidDutyType(t *testing.T) {
	mockService := &mockDutyService{}

	body, _ := json.Marshal(dtos.DutyCompletionReq{DutyID: "42", DutyType: "dishes"})
	req := httptest.NewRequest("POST", "/api/duties/complete", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	CompleteDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestCompleteDutyHandler_InvalidDutyID(t *testing.T) {
	mockService := &mockDutyService{}

	body, _ := json.Marshal(dtos.DutyCompletionReq{DutyID: "not-a-number", DutyType: "coffee"})
	req := httptest.NewRequest("POST", "/api/duties/complete", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	CompleteDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestCompleteDutyHandler_AlreadyCompleted(t *testing.T) {
	mockService := &mockDutyService{
		completeFunc: func(ctx context.Context, id int, dutyType constants.DutyType) error {
			return repositories.ErrAlreadyCompleted
		},
	}

	body, _ := json.Marshal(dtos.DutyCompletionReq{DutyID: "42", DutyType: "coffee"})
	req := httptest.NewRequest("POST", "/api/duties/complete", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	CompleteDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rr.Code)
	}

	var response dtos.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Error != constants.ErrMsgDutyNotCompleted {
		t.Errorf("Unexpected error message %q", response.Error)
	}
}

func TestUncompleteDutyHandler_Success(t *testing.T) {
	mockService := &mockDutyService{
		uncompleteFunc: func(ctx context.Context, id int, dutyType constants.DutyType) error {
			return nil
		},
		listFunc: func(ctx context.Context, limit int) ([]dtos.DutyResponse, error) {
			return nil, nil
		},
	}

	body, _ := json.Marshal(dtos.DutyCompletionReq{DutyID: "42", DutyType: "fridge"})
	req := httptest.NewRequest("POST", "/api/duties/uncomplete", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	UncompleteDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.DutyMutationResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Message != constants.MsgDutyUncompleted {
		t.Errorf("Unexpected message %q", response.Message)
	}
}

func TestGetRecentDutyHandler_MissingType(t *testing.T) {
	mockService := &mockDutyService{}

	req := httptest.NewRequest("GET", "/api/duties/recent", nil)
	rr := httptest.NewRecorder()
	GetRecentDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetRecentDutyHandler_InvalidType(t *testing.T) {
	mockService := &mockDutyService{}

	req := httptest.NewRequest("GET", "/api/duties/recent?duty_type=dishes", nil)
	rr := httptest.NewRecorder()
	GetRecentDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetRecentDutyHandler_FromCache(t *testing.T) {
	mockService := &mockDutyService{
		recentFunc: func(ctx context.Context, dutyType constants.DutyType) (*dtos.DutyResponse, string, error) {
			duty := sampleDuty()
			return &duty, dtos.SourceCache, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/duties/recent?duty_type=coffee", nil)
	rr := httptest.NewRecorder()
	GetRecentDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.RecentDutyResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Source != "cache" {
		t.Errorf("Expected source cache, got %s", response.Source)
	}
	if response.Duty.DutyID != "42" {
		t.Errorf("Unexpected duty: %+v", response.Duty)
	}
}

func TestGetRecentDutyHandler_NotFound(t *testing.T) {
	mockService := &mockDutyService{
		recentFunc: func(ctx context.Context, dutyType constants.DutyType) (*dtos.DutyResponse, string, error) {
			return nil, "", repositories.ErrNotFound
		},
	}

	req := httptest.NewRequest("GET", "/api/duties/recent?duty_type=fridge", nil)
	rr := httptest.NewRecorder()
	GetRecentDutyHandler(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rr.Code)
	}

	var response dtos.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Error != "No fridge duty found" {
		t.Errorf("Unexpected error message %q", response.Error)
	}
}
