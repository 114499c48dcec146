package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"prompt-manager/internal/service"
	"prompt-manager/internal/service/mocks"
	"prompt-manager/internal/storage"
)

func TestNewPromptHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompts := mocks.NewMockPromptService(ctrl)
	handler := NewPromptHandler(mockPrompts)

	if handler == nil {
		t.Fatal("NewPromptHandler() returned nil")
	}
	if handler.prompts != mockPrompts {
		t.Error("NewPromptHandler() prompts not set correctly")
	}
}

func TestPromptHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompts := mocks.NewMockPromptService(ctrl)
	mockPrompts.EXPECT().
		List(gomock.Any()).
		Return([]storage.PromptRecord{
			{Index: 1, Title: "A", Categories: []string{"poses"}, Favorite: true, Prompt: "a"},
			{Index: 2, Title: "B", Image: "prompt_2.png", Prompt: "b"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/prompts", nil)
	w := httptest.NewRecorder()
	NewPromptHandler(mockPrompts).List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, want %v", w.Code, http.StatusOK)
	}

	var got []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d prompts, want 2", len(got))
	}
	if got[0]["image"] != nil {
		t.Errorf("prompt without image encoded image = %v, want null", got[0]["image"])
	}
	if cats, ok := got[1]["categories"].([]any); !ok || len(cats) != 0 {
		t.Errorf("prompt without categories encoded categories = %v, want []", got[1]["categories"])
	}
	if got[1]["image"] != "prompt_2.png" {
		t.Errorf("image = %v, want prompt_2.png", got[1]["image"])
	}
}

func TestPromptHandler_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(*mocks.MockPromptService)
		wantStatus    int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful add",
			body: `{"title":"X","prompt":"Y","categories":["new_cat"],"favorite":true,"image":null}`,
			mockSetup: func(m *mocks.MockPromptService) {
				m.EXPECT().
					Add(gomock.Any(), service.PromptInput{Title: "X", Prompt: "Y", Categories: []string{"new_cat"}, Favorite: true}).
					Return(4, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp AddPromptResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Status != "success" || resp.Index != 4 {
					t.Errorf("response = %+v, want success index 4", resp)
				}
			},
		},
		{
			name: "validation error",
			body: `{"title":"","prompt":""}`,
			mockSetup: func(m *mocks.MockPromptService) {
				m.EXPECT().
					Add(gomock.Any(), gomock.Any()).
					Return(0, &service.ValidationError{Field: "title", Message: "Title required"})
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Status != "error" || resp.Message != "Title required" {
					t.Errorf("response = %+v, want error Title required", resp)
				}
			},
		},
		{
			name:       "invalid JSON body",
			body:       "invalid json",
			mockSetup:  func(m *mocks.MockPromptService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"title":"X","prompt":"Y"}`,
			mockSetup: func(m *mocks.MockPromptService) {
				m.EXPECT().
					Add(gomock.Any(), gomock.Any()).
					Return(0, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Message != "disk full" {
					t.Errorf("message = %q, want the error echoed", resp.Message)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPrompts := mocks.NewMockPromptService(ctrl)
			tt.mockSetup(mockPrompts)

			req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			NewPromptHandler(mockPrompts).Add(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Add() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestPromptHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockPromptService)
		wantStatus int
	}{
		{
			name: "successful update",
			body: `{"index":2,"title":"T","prompt":"P","image":"prompt_2.png"}`,
			mockSetup: func(m *mocks.MockPromptService) {
				m.EXPECT().
					Update(gomock.Any(), 2, service.PromptInput{Title: "T", Prompt: "P", Image: "prompt_2.png"}).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing index is out of range",
			body: `{"title":"T","prompt":"P"}`,
			mockSetup: func(m *mocks.MockPromptService) {
				m.EXPECT().
					Update(gomock.Any(), -1, gomock.Any()).
					Return(&service.ValidationError{Field: "index", Message: "Index out of range"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPrompts := mocks.NewMockPromptService(ctrl)
			tt.mockSetup(mockPrompts)

			req := httptest.NewRequest(http.MethodPost, "/update", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			NewPromptHandler(mockPrompts).Update(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Update() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestPromptHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompts := mocks.NewMockPromptService(ctrl)
	mockPrompts.EXPECT().
		Delete(gomock.Any(), 2).
		Return(storage.PromptRecord{Index: 2, Title: "Gentle Kneel"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/delete", bytes.NewBufferString(`{"index":2}`))
	w := httptest.NewRecorder()
	NewPromptHandler(mockPrompts).Delete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Delete() status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp DeletePromptResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" || resp.Deleted != "Gentle Kneel" {
		t.Errorf("response = %+v, want success Gentle Kneel", resp)
	}
}

func TestPromptHandler_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompts := mocks.NewMockPromptService(ctrl)
	mockPrompts.EXPECT().
		SaveAll(gomock.Any(), []storage.PromptRecord{
			{Index: 5, Title: "A", Categories: []string{}, Prompt: "a"},
			{Index: 1, Title: "B", Categories: []string{"x"}, Image: "prompt_1.png", Prompt: "b"},
		}).
		Return(2, nil)

	body := `{"prompts":[{"index":5,"title":"A","prompt":"a"},{"index":1,"title":"B","categories":["x"],"image":"prompt_1.png","prompt":"b"}]}`
	req := httptest.NewRequest(http.MethodPost, "/save", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	NewPromptHandler(mockPrompts).Save(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Save() status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp SavePromptsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("Save() count = %d, want 2", resp.Count)
	}
}
