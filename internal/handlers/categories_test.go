package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"prompt-manager/internal/service"
	"prompt-manager/internal/service/mocks"
)

func TestCategoryHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategories := mocks.NewMockCategoryService(ctrl)
	mockCategories.EXPECT().List(gomock.Any()).Return([]string{"emotions", "poses"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	NewCategoryHandler(mockCategories).List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, want %v", w.Code, http.StatusOK)
	}
	var got []string
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if want := []string{"emotions", "poses"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestCategoryHandler_AddDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		method     string
		body       string
		mockSetup  func(*mocks.MockCategoryService)
		serve      func(*CategoryHandler) http.HandlerFunc
		wantStatus int
		wantCats   []string
	}{
		{
			name:   "add",
			method: http.MethodPost,
			body:   `{"category":"Poses"}`,
			mockSetup: func(m *mocks.MockCategoryService) {
				m.EXPECT().Add(gomock.Any(), "Poses").Return([]string{"poses"}, nil)
			},
			serve:      func(h *CategoryHandler) http.HandlerFunc { return h.Add },
			wantStatus: http.StatusOK,
			wantCats:   []string{"poses"},
		},
		{
			name:   "add empty name",
			method: http.MethodPost,
			body:   `{"category":""}`,
			mockSetup: func(m *mocks.MockCategoryService) {
				m.EXPECT().Add(gomock.Any(), "").Return(nil, &service.ValidationError{Field: "category", Message: "Category name required"})
			},
			serve:      func(h *CategoryHandler) http.HandlerFunc { return h.Add },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			body:   `{"category":"poses"}`,
			mockSetup: func(m *mocks.MockCategoryService) {
				m.EXPECT().Remove(gomock.Any(), "poses").Return([]string{"emotions"}, nil)
			},
			serve:      func(h *CategoryHandler) http.HandlerFunc { return h.Delete },
			wantStatus: http.StatusOK,
			wantCats:   []string{"emotions"},
		},
		{
			name:       "delete invalid body",
			method:     http.MethodDelete,
			body:       `[`,
			mockSetup:  func(m *mocks.MockCategoryService) {},
			serve:      func(h *CategoryHandler) http.HandlerFunc { return h.Delete },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := mocks.NewMockCategoryService(ctrl)
			tt.mockSetup(mockCategories)

			req := httptest.NewRequest(tt.method, "/categories", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			tt.serve(NewCategoryHandler(mockCategories))(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantCats == nil {
				return
			}
			var resp CategoriesResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != "success" || !reflect.DeepEqual(resp.Categories, tt.wantCats) {
				t.Errorf("response = %+v, want success %v", resp, tt.wantCats)
			}
		})
	}
}
